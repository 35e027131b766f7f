// Package session implements the interactive menu loop as an explicit
// two-state machine: no active user, then a per-user action menu.
//
// Each state owns a dispatch table mapping input tokens to transitions, and
// all IO runs over injected reader/writer streams, so a scripted input
// sequence can drive a complete session in tests. Input parse failures are
// reported and the loop re-displays the current menu; nothing in this package
// terminates the process.
package session
