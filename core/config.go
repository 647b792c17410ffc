package core

// Config represents decoder config
type Config struct {
	// StrictPadding rejects headers whose bytes after the algorithm name are not zero.
	// Trailing bytes should be zeros, but the format leaves their content unspecified.
	StrictPadding bool
}

// DefaultConfig represents default decoder config
var DefaultConfig = Config{
	StrictPadding: false,
}

// Option represents decoder configuration option
type Option func(cfg Config) Config

// WithStrictPadding makes Decode fail with ErrNonZeroPadding on garbage padding
func WithStrictPadding() Option {
	return func(cfg Config) Config {
		cfg.StrictPadding = true

		return cfg
	}
}

// WithConfig replaces the whole decoder config
func WithConfig(c Config) Option {
	return func(Config) Config {
		return c
	}
}
