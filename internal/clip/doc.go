// Package clip describes the visible part of a holder as a four-edge inset.
//
// A Region cuts Top and Bottom as percentages of the surface height and
// Left and Right in whole cells. The preview states are built from a
// slice's insets: Below is the slide-in start (everything cut from the top),
// Slice the settled column, Above the slide-out end (everything cut from the
// bottom) and Full the fullscreen surface.
//
// Lerp interpolates between two regions under an Easing, a CSS named timing
// function. Visible maps a region onto a w×h surface as the rectangle of
// cells to paint; insets that cross give an empty rectangle.
package clip
