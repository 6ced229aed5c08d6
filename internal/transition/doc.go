// Package transition drives clip regions from one value to another over a
// fixed duration and easing.
//
// It models an animated property change with a completion callback: each key
// (a holder id) has at most one transition in flight, and the listener passed
// to Start is called exactly once, from Advance, when that transition reaches
// its deadline. Starting or snapping the same key again supersedes the old
// transition and its listener is dropped.
//
// The engine has no timers of its own. The UI sends frame messages and calls
// Advance with the frame time; tests call Advance with a manual clock.
// Completions for one key are delivered in the order their transitions were
// issued. Completions for different keys in the same Advance call are
// delivered in issue order as well, though callers must not rely on it.
package transition
