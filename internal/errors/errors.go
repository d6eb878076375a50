package errors

import "errors"

// Phase errors indicate a simulation call that is not valid right now.
var (
	// ErrInvalidPhase indicates the operation is not allowed in the current phase.
	ErrInvalidPhase = errors.New("operation not allowed in the current phase")

	// ErrNoFileSelected indicates an encryption was requested without a file.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrSimulationReset indicates the run was abandoned because the simulation was reset.
	ErrSimulationReset = errors.New("simulation was reset")
)

// Digest errors end the current simulation run. Only a reset recovers.
var (
	// ErrDigestFailed indicates the file could not be read or hashed.
	ErrDigestFailed = errors.New("failed to compute file digest")

	// ErrDownloadFailed indicates the original bytes could not be handed back.
	ErrDownloadFailed = errors.New("failed to download file")

	// ErrHandleRevoked indicates the file handle was released before use.
	ErrHandleRevoked = errors.New("file handle has been revoked")
)

// File errors indicate issues with the selected file.
var (
	// ErrFileNotFound indicates the selected file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotRegularFile indicates the selected path is a directory or device.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrFileChanged indicates the file on disk no longer matches the selection.
	ErrFileChanged = errors.New("file changed since it was selected")
)

// Input errors indicate malformed user input.
var (
	// ErrInvalidAnswer indicates a quiz answer is not a valid option number.
	ErrInvalidAnswer = errors.New("invalid quiz answer")

	// ErrInvalidTheme indicates an unknown theme name.
	ErrInvalidTheme = errors.New("invalid theme, expected light or dark")

	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")
)
