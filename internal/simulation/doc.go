// Package simulation drives the upload, encrypt, store and decrypt story.
//
// Nothing is actually encrypted. The only real computation is a SHA-256
// digest of the selected file, shown to the user as the "encryption key".
// The pauses between phases exist so the explanation for each phase stays
// on screen long enough to read.
//
// # Phases
//
//	Idle -> Uploading -> Encrypting -> Stored -> Decrypting -> Complete
//
// Transitions only move forward. Reset returns to Idle from anywhere,
// including the terminal Failed phase that a read or digest error leads to.
//
// # Handles
//
// Selecting a file derives a revocable Handle, the counterpart of a browser
// object URL. The final download reads the bytes through that handle. Reset
// and selecting another file revoke it, so a stale download cannot read a
// file the user already discarded.
//
// # Concurrency
//
// A Machine runs at most one sequence at a time. The run functions block
// for the pauses without holding the machine lock, so Reset may be called
// from another goroutine (a signal handler, a UI event). Every run carries
// the generation it started in and gives up with ErrSimulationReset as soon
// as it notices a newer generation, so no stale transition lands after a
// reset.
package simulation
