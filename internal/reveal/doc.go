// Package reveal sequences pointer and keyboard input into clip transitions
// for a grid of slices.
//
// Hovering a slice mounts its holder and slides it in from the bottom of the
// column; leaving slides it out through the top after a debounce delay.
// Clicking expands the previewing holder to the full surface and clicking
// it again, pressing escape or clicking outside it shrinks it back. The
// close either slides the holder out (CloseSlideOut) or keeps it previewing
// (CloseStay).
//
// While an expand or close is in progress the machine is guarded and every
// other input is dropped. Completions arrive through Advance, driven by the
// caller's frame loop, and the debounce runs on the caller's Scheduler, so
// the machine itself never blocks and must be used from one goroutine.
package reveal
