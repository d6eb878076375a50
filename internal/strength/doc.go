// Package strength grades how strong a password looks.
//
// The grade is a heuristic for teaching, not an entropy estimate. Four
// independent checks each add one point:
//
//   - more than seven characters
//   - an uppercase letter A-Z
//   - a digit 0-9
//   - a character outside A-Z, a-z and 0-9
//
// The empty string always scores 0. The checks do not depend on each other,
// so "a1!" scores 2 even though it is short.
package strength
