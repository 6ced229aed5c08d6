// Package holder owns the per-content wrappers that mount into the portal.
package holder

import (
	"github.com/five82/slicer/internal/clip"
	"github.com/five82/slicer/internal/content"
	"github.com/five82/slicer/internal/geometry"
)

// Finder locates content by identifier.
type Finder interface {
	FindContent(id string) (*content.Node, bool)
	// FindContentBackground returns the part of the node a holder adopts.
	FindContentBackground(id string) (content.Background, bool)
}

// Holder wraps one content node. It lives for the rest of the session once
// created; it is only ever unmounted and remounted.
type Holder struct {
	ID   string
	Node *content.Node
	// Region is the adopted background of Node.
	Region content.Background

	// Clip is the last region assigned to the holder (the target of its
	// latest transition).
	Clip clip.Region
	// Bounds are the slice insets of the most recent reveal.
	Bounds geometry.Insets
	// Original are the slice insets captured when the holder was opened
	// fullscreen; closing returns exactly here.
	Original geometry.Insets

	Mounted bool
}

// Background returns what the holder paints.
func (h *Holder) Background() content.Background {
	if h.Region != nil || h.Node == nil {
		return h.Region
	}
	return h.Node.Background
}

// Cache maps content identifiers to holders, creating each at most once.
type Cache struct {
	finder  Finder
	holders map[string]*Holder
}

// NewCache returns an empty cache that adopts content from finder.
func NewCache(finder Finder) *Cache {
	return &Cache{finder: finder, holders: make(map[string]*Holder)}
}

// Get returns the holder for id, adopting the content on first use. It
// returns false when the content does not exist; callers ignore the
// interaction in that case.
func (c *Cache) Get(id string) (*Holder, bool) {
	if h, ok := c.holders[id]; ok {
		return h, true
	}
	node, ok := c.finder.FindContent(id)
	if !ok || node == nil {
		return nil, false
	}

	// Adoption is one-way: the node is sized to fill the holder and made
	// visible again after being hidden during setup.
	node.Parent = id
	node.FullBleed = true
	node.Hidden = false

	h := &Holder{ID: id, Node: node}
	if bg, ok := c.finder.FindContentBackground(id); ok {
		h.Region = bg
	}
	c.holders[id] = h
	return h, true
}

// Peek returns a cached holder without creating one.
func (c *Cache) Peek(id string) (*Holder, bool) {
	h, ok := c.holders[id]
	return h, ok
}

// Len returns the number of holders created so far.
func (c *Cache) Len() int {
	return len(c.holders)
}
