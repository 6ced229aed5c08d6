// Package geometry resolves slice rectangles into clip insets.
//
// The surface and every slice are described by a Rect in device pixels. For
// the terminal renderer a device pixel is one cell. Resolve is pure and must
// be called again whenever layout may have changed (every reveal and every
// resize), since the rectangles are derived, never stored.
//
// Columns provides the grid layout used by the UI: equal columns aligned to
// whole cells, so a 1000-wide surface with three columns yields the insets
// {0,667}, {333,334} and {666,0}.
package geometry
