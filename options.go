package matmemo

// Option mutates an Inverter during construction.
type Option func(*Inverter)

// WithInverse overrides the inversion primitive; a nil fn restores the
// default, matrix.Inverse.
func WithInverse(fn InverseFunc) Option {
	return func(v *Inverter) {
		v.inverse = fn
	}
}

// WithObserver attaches an observer to receive compute events.
func WithObserver(o Observer) Option {
	return func(v *Inverter) {
		v.observer = o
	}
}
