package content

import (
	"fmt"
	"strings"
)

// Ref names one source entry of the grid. It is either a bare identifier or
// an identifier with a label.
type Ref struct {
	ID    string
	Label string
}

// Identifier returns a Ref with no label.
func Identifier(id string) Ref {
	return Ref{ID: id}
}

// Described returns a Ref carrying a label.
func Described(id, label string) Ref {
	return Ref{ID: id, Label: label}
}

// HasLabel reports whether the entry was described with a label.
func (r Ref) HasLabel() bool {
	return r.Label != ""
}

// LabelAt returns the label, or "Item N" for the entry at zero-based index i.
func (r Ref) LabelAt(i int) string {
	if r.HasLabel() {
		return r.Label
	}
	return fmt.Sprintf("Item %d", i+1)
}

// Normalize converts raw source entries, as decoded from TOML or YAML, into
// Refs. An entry is either a string or a table with "id" (or "rec_id" or
// "recId") and an optional "label" (or "title"). Entries without an id are
// skipped.
func Normalize(raw []any) []Ref {
	refs := make([]Ref, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if id := strings.TrimSpace(v); id != "" {
				refs = append(refs, Identifier(id))
			}
		case Ref:
			if v.ID != "" {
				refs = append(refs, v)
			}
		case map[string]any:
			id := firstString(v, "id", "rec_id", "recId")
			if id == "" {
				continue
			}
			label := firstString(v, "label", "title")
			if label == "" {
				refs = append(refs, Identifier(id))
			} else {
				refs = append(refs, Described(id, label))
			}
		}
	}
	return refs
}

// IDs returns the identifiers of refs in order.
func IDs(refs []Ref) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}
