// Package transcript records simulation runs as JSON Lines.
//
// A transcript is opt-in (simulate --transcript <path>). Each phase
// transition becomes one line:
//
//	{"ts":"2026-10-16T09:00:00.000000Z","run":"…","from":"idle","to":"uploading","file":"laporan.pdf","size":1024}
//
// The key appears once it exists, from the Stored transition onward. The
// file content is never written.
//
// # Failure Handling
//
// Recording is best-effort. A transcript that cannot be written never stops
// or fails the simulation; the first write error is kept and reported by
// Close.
package transcript
