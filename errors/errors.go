package errors

import "fmt"

var (
	ErrMalformedEvent = fmt.Errorf("malformed event segment")
	ErrEmptyDraft     = fmt.Errorf("draft message is empty")
	ErrUnknownRoom    = fmt.Errorf("room is not known locally")
	ErrInvalidCommand = fmt.Errorf("invalid outbound command")
)
