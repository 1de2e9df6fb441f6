package matmemo

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// NewZapObserver returns an Observer that reports compute events
// through logger. Cache hits log at debug level, misses at info, and
// failed computations at warn with the error attached.
func NewZapObserver(logger *zap.Logger) Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ObserverFunc(func(_ context.Context, op, key string, hit bool, err error, dur time.Duration) {
		fields := []zap.Field{
			zap.String("op", op),
			zap.String("key", key),
			zap.Duration("duration", dur),
		}
		switch {
		case err != nil:
			logger.Warn("compute failed", append(fields, zap.Error(err))...)
		case hit:
			logger.Debug("cache hit", fields...)
		default:
			logger.Info("cache miss", fields...)
		}
	})
}
