package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnknownKind is returned for a definition whose kind is not fill, text
// or image.
var ErrUnknownKind = errors.New("unknown content kind")

// ErrNotFound is returned when no definition exists for an identifier.
var ErrNotFound = errors.New("content not found")

// Definition describes one background as written in the config file.
type Definition struct {
	Kind  string `toml:"kind" yaml:"kind"`
	Color string `toml:"color" yaml:"color"`
	FG    string `toml:"fg" yaml:"fg"`
	Glyph string `toml:"glyph" yaml:"glyph"`
	Text  string `toml:"text" yaml:"text"`
	Path  string `toml:"path" yaml:"path"`
}

// Node is a content node that a holder can adopt. Until adoption it is
// hidden off-screen; adoption makes it visible and sizes it full-bleed
// inside the holder.
type Node struct {
	ID         string
	Background Background

	Hidden    bool
	FullBleed bool
	Parent    string
}

// Registry resolves content identifiers to nodes, building each node at most
// once from its definition.
type Registry struct {
	defs  map[string]Definition
	nodes map[string]*Node
	// Dir resolves relative text and image paths.
	Dir string
}

// NewRegistry returns a registry over defs.
func NewRegistry(defs map[string]Definition) *Registry {
	return &Registry{defs: defs, nodes: make(map[string]*Node)}
}

// FindContent returns the node for id, or false when there is no loadable
// content behind it.
func (r *Registry) FindContent(id string) (*Node, bool) {
	node, err := r.load(id)
	if err != nil {
		return nil, false
	}
	return node, true
}

// FindContentBackground returns the region of the node a holder adopts.
func (r *Registry) FindContentBackground(id string) (Background, bool) {
	node, ok := r.FindContent(id)
	if !ok || node.Background == nil {
		return nil, false
	}
	return node.Background, true
}

// HideAll moves every listed source off-screen. It runs once while the grid
// is being built, before any holder exists.
func (r *Registry) HideAll(ids []string) {
	for _, id := range ids {
		if node, err := r.load(id); err == nil && node.Parent == "" {
			node.Hidden = true
			node.FullBleed = false
		}
	}
}

// Ready reports the first identifier that cannot be loaded.
func (r *Registry) Ready(ids []string) error {
	for _, id := range ids {
		if _, err := r.load(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) load(id string) (*Node, error) {
	if node, ok := r.nodes[id]; ok {
		return node, nil
	}
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	bg, err := r.build(def)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", id, err)
	}
	node := &Node{ID: id, Background: bg}
	r.nodes[id] = node
	return node, nil
}

func (r *Registry) build(def Definition) (Background, error) {
	switch strings.ToLower(strings.TrimSpace(def.Kind)) {
	case "", "fill":
		glyph := ' '
		if g, _ := utf8.DecodeRuneInString(def.Glyph); g != utf8.RuneError {
			glyph = g
		}
		return Fill{Color: def.Color, Glyph: glyph, FG: def.FG}, nil
	case "text":
		art := def.Text
		if art == "" && def.Path != "" {
			data, err := os.ReadFile(r.resolve(def.Path))
			if err != nil {
				return nil, fmt.Errorf("read text: %w", err)
			}
			art = string(data)
		}
		return NewText(art, def.FG, def.Color), nil
	case "image":
		if def.Path == "" {
			return nil, errors.New("image content needs a path")
		}
		return OpenImage(r.resolve(def.Path))
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, def.Kind)
	}
}

func (r *Registry) resolve(path string) string {
	if filepath.IsAbs(path) || r.Dir == "" {
		return path
	}
	return filepath.Join(r.Dir, path)
}
