package memspace

// SpaceOptions collects the configurable construction parameters for an
// AddressSpace.
type SpaceOptions struct {
	Capacity uint64
}

// Option is a generic option type. Options type assert to the target record
// they understand and, if that fails, the expectation is they ignore the
// options.
type Option func(any)

// WithCapacity sets the maximum total bytes the space may hold across all
// live blocks.
func WithCapacity(capacity uint64) Option {
	return func(opts any) {
		if o, ok := opts.(*SpaceOptions); ok {
			o.Capacity = capacity
		}
	}
}
