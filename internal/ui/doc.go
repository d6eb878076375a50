// Package ui provides semantic text formatting for Cloud Safe output.
//
// Formatters render content by meaning (a command, a file, a key) and pick
// colors when the terminal supports them. When NO_COLOR is set or the
// terminal doesn't support colors, text decorations are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("cloudsafe quiz")       // Commands
//	ui.Path.Sprint("laporan.pdf")          // Files and directories
//	ui.Key.Sprint("9f86d081…")             // The derived key
//	ui.Success.Sprint("✓")                 // Success indicators
//	ui.Error.Sprint("✗")                   // Error indicators
//	ui.Info.Sprint("→")                    // Hints
//	ui.Active.Sprint("2. Enkripsi")        // The highlighted process step
//	ui.Muted.Sprint("opsional")            // De-emphasized text
//
// # Color Behavior
//
// Colors are disabled when NO_COLOR is set (any value) or fatih/color
// detects a terminal without color support. Without colors:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Active: > prefix
//   - Muted: (parentheses)
//   - Others: no decoration
package ui
