package feed

import "github.com/mhladik/rinkrating/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithParseWorkers sets the number of concurrent boxscore parsers.
func WithParseWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithLogger sets the logger used by the loader.
func WithLogger(lg logger.Logger) Option {
	return func(l *Loader) {
		l.logger = lg
	}
}
