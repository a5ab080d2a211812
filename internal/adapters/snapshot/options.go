package snapshot

import "github.com/mhladik/rinkrating/pkg/logger"

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used by the store.
func WithLogger(l logger.Logger) Option {
	return func(s *FileStore) {
		s.logger = l
	}
}
