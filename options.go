package pagecurl

import "log/slog"

// Option configures a Compositor or Synthesizer during creation.
//
// Example:
//
//	c := pagecurl.NewCompositor(pagecurl.WithLogger(logger))
type Option func(*options)

// options holds optional configuration.
type options struct {
	logger *slog.Logger
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		logger: nil, // falls back to the package logger at log time
	}
}

// WithLogger sets a logger for one instance, overriding the package logger
// set by SetLogger. A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// log returns the instance logger, or the package logger when none is set.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
