// Package tui provides the interactive terminal views: the password
// strength meter and the quiz. Both are bubbletea models that draw with the
// palette of a theme.State, so ctrl+t flips light and dark while they run.
package tui
