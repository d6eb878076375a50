// Package utils provides shared helpers for the Cloud Safe commands.
//
// # String Utilities
//
//   - FormatSize: human-readable byte counts
//   - GroupKey: splits a hex key into readable blocks
//   - ParseAnswers: parses "2,3,3,3,4" into zero-based quiz answers
//
// # I/O Utilities
//
//   - ReadStdin: reads piped standard input
//
// # Terminal Utilities
//
//   - IsTerminal / IsStdoutTerminal: TTY detection
//   - ReadPassword: prompts without echo
//   - ClearScreen / WaitForEnter: paging for the tour
package utils
