package notifications

import "errors"

var (
	// ErrUnknownPriority is returned when a priority name cannot be parsed.
	ErrUnknownPriority = errors.New("unknown notification priority")

	// ErrUnknownType is returned when a policy file references a notification
	// type the store does not know.
	ErrUnknownType = errors.New("unknown notification type")

	// ErrInvalidPolicy is returned when a policy file cannot be read or parsed.
	ErrInvalidPolicy = errors.New("invalid notification policy")
)
