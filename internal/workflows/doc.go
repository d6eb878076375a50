// Package workflows provides high-level orchestration for Cloud Safe commands.
//
// Workflows coordinate the simulation, transcript and configuration packages
// to implement complete user-facing features, independent of CLI concerns
// like flag parsing, spinners and output formatting.
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows return sentinel errors from the internal/errors package so the
// CLI can pick a message with errors.Is:
//
//	result, err := workflows.Simulate(ctx, opts)
//	if errors.Is(err, kerrors.ErrSimulationReset) {
//	    // The user pressed Ctrl-C
//	}
package workflows
