package matmemo

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/goforj/matmemo/matrix"
)

// MatrixDigest returns a stable hex digest of a matrix's shape and
// element bits. Identical matrices produce identical digests. It keys
// diagnostic events only; the cache itself never consults digests.
func MatrixDigest(m *matrix.Dense) string {
	if m == nil {
		return ""
	}
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Rows()))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Cols()))
	_, _ = h.Write(buf[:])
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
