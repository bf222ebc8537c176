package cfgloader

// Options holds configuration options for Load and MustLoad.
type Options struct {
	// Silent disables printing the loaded config to stdout when set to true.
	Silent bool

	// Dir is the directory holding the ${ENVIRONMENT}.yaml files.
	Dir string
}

// Option is a functional option for configuring Load behavior.
type Option func(*Options)

// WithSilent disables config logging to stdout.
func WithSilent() Option {
	return func(o *Options) {
		o.Silent = true
	}
}

// WithDir overrides the config directory.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}
