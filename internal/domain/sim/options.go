package sim

import (
	"github.com/mhladik/rinkrating/internal/domain/dedupe"
	"github.com/mhladik/rinkrating/pkg/logger"
)

// Option applies a configuration option to the Driver.
type Option func(*Driver)

// WithLogger sets the logger used by the driver.
func WithLogger(l logger.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithDeduper replaces the exactly-once guard.
func WithDeduper(dd dedupe.Deduper) Option {
	return func(d *Driver) {
		if dd != nil {
			d.seen = dd
		}
	}
}
