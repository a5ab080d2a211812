package extract

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithNameFallback controls whether records lacking every numeric identity
// field may be keyed by their normalized full name. Disabled, such records
// are dropped instead.
func WithNameFallback(enabled bool) Option {
	return func(x *Extractor) {
		x.nameFallback = enabled
	}
}
