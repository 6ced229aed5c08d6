// Package ui provides the terminal front end for slicer.
//
// # Architecture Overview
//
// The UI package implements a Bubble Tea program that lays a row of slices
// across the terminal and drives a reveal.Machine from mouse and keyboard
// input. Everything the machine does happens inside Update, on the single
// Bubble Tea goroutine: input handlers, debounce timers and transition
// completions are all delivered as messages.
//
// # Package Structure
//
//   - app.go: Model, message dispatch, the frame loop and Run
//   - layout.go: Column layout of the surface and hit-testing
//   - scheduler.go: reveal.Scheduler backed by tea.Tick
//   - render.go: Cell painting of mounted holders, grid overlay and status bar
//   - keys.go, help.go: Key bindings and the help overlay
//   - theme.go: Colour palettes
//
// # Event Flow
//
//  1. The first WindowSizeMsg lays out the grid and reveals the first slice
//  2. Mouse motion is hit-tested; changes of slice become hover leave/enter
//  3. A left press opens or closes the slice under it; while fullscreen any
//     press on the surface closes
//  4. While a transition is in flight a frameMsg every FrameInterval advances
//     the machine, which runs completions and starts follow-up phases
//  5. Every state change is published to state.Store
//
// # Surface
//
// The surface is the terminal minus the status bar. One cell is one pixel
// for geometry purposes; vertical clip percentages round to whole rows.
//
// # Key Bindings
//
//   - ←/h, →/l: Move the slice cursor (previews it unless click-only)
//   - Enter/Space: Open or close the slice under the cursor
//   - Esc: Close fullscreen
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Exit
package ui
