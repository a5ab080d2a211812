package feed

import "errors"

var (
	// ErrReadSchedule indicates the schedule file could not be read.
	ErrReadSchedule = errors.New("read schedule")

	// ErrDecodeSchedule indicates the schedule file is not valid JSON.
	ErrDecodeSchedule = errors.New("decode schedule")
)
