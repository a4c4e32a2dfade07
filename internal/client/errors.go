package client

import "errors"

var (
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)

// exitNotAuthorized is the process exit status of "authorize" when the user
// is rejected.
const exitNotAuthorized = 2
