// Package errors provides typed error values for the Cloud Safe application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Phase errors: a simulation call arrived in the wrong phase
//     (ErrInvalidPhase, ErrNoFileSelected, ErrSimulationReset)
//   - Digest errors: the fail-stop path of a simulation run
//     (ErrDigestFailed, ErrDownloadFailed, ErrHandleRevoked)
//   - File errors: the selected path cannot be used (ErrFileNotFound,
//     ErrNotRegularFile, ErrFileChanged)
//   - Input errors: malformed user input (ErrInvalidAnswer, ErrInvalidTheme)
//
// # Usage
//
// Phase errors are guard failures. The CLI treats them as no-ops and never
// shows them as failures:
//
//	err := machine.StartDecryption(ctx)
//	if errors.Is(err, kerrors.ErrInvalidPhase) {
//	    return nil
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("hashing %s: %w", name, errors.ErrDigestFailed)
package errors
