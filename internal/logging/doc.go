// Package logger provides leveled terminal logging for Cloud Safe commands.
//
// Output is formatted with semantic prefixes and colors from fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Warnings and errors are always written to stderr.
//
// The simulation itself never reports to the logger. Failures are shown
// through the command's final message, the logger only narrates what the
// command is doing for the operator.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Selected %s", name)
//
// The root command creates the logger in its PersistentPreRun.
package logger
