// Package errors provides typed error values for the Mānuka application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Validation errors: Malformed invocations (ErrMissingKey, ErrNoSource)
//   - Store errors: File system issues (ErrStoreUnavailable, ErrSecretWriteFailed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if key == "" {
//	    return errors.ErrMissingKey
//	}
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrMissingKey) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("appending secret for key %s: %w", key, kerrors.ErrSecretWriteFailed)
package errors
