package service

import "errors"

// ErrNotStarted indicates Run or a read was attempted before Start.
var ErrNotStarted = errors.New("service not started")
