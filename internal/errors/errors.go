package errors

import "errors"

// Validation errors indicate a malformed invocation. They are user-correctable:
// the operator reruns the command with the right arguments.
var (
	// ErrMissingKey indicates no secret key name was provided.
	ErrMissingKey = errors.New("key name is required")

	// ErrConflictingSource indicates both --value and --generate were set.
	ErrConflictingSource = errors.New("cannot specify both --value and --generate")

	// ErrNoSource indicates neither --value nor --generate was set.
	ErrNoSource = errors.New("no secret source specified")

	// ErrInvalidLength indicates the requested generation length is not positive.
	ErrInvalidLength = errors.New("generation length must be positive")
)

// Store errors indicate the secret store could not be read or written.
var (
	// ErrStoreUnavailable indicates the store directory could not be created.
	ErrStoreUnavailable = errors.New("secret store directory unavailable")

	// ErrSecretWriteFailed indicates the secret file could not be written.
	ErrSecretWriteFailed = errors.New("failed to write secret file")
)
