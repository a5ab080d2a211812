package rating

import "errors"

// Sentinel kinds for ledger errors.
var (
	ErrEventNotCompleted = errors.New("event not completed")
)
