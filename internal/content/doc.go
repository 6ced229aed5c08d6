// Package content provides the backgrounds revealed behind the slice grid.
//
// Sources are listed in the config as plain identifiers or as tables with an
// id and a label; Normalize turns both forms into Refs once at build time.
// Each identifier maps to a Definition (fill, text or image) and the
// Registry lazily turns definitions into Nodes. A Node starts hidden
// off-screen and is adopted exactly once by a holder.
package content
