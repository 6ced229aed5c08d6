// Package state shares the latest reveal state between the UI loop and the
// rest of the program.
//
// The reveal machine runs entirely on the Bubble Tea update goroutine. Every
// state change is published to a Store so that code on other goroutines (the
// composition root logging a summary on shutdown, for example) can read a
// consistent copy without touching the machine.
//
// Store uses a sync.RWMutex; Snapshot returns a deep copy so callers may
// mutate the result freely.
package state
