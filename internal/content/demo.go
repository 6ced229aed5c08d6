package content

// Demo returns a small built-in set of sources so the program can run
// without a config file.
func Demo() ([]Ref, map[string]Definition) {
	refs := []Ref{
		Described("dusk", "Dusk"),
		Described("tide", "Tide"),
		Identifier("moss"),
		Described("ember", "Ember"),
	}
	defs := map[string]Definition{
		"dusk":  {Kind: "fill", Color: "#3b2f5c", FG: "#7a5fa8", Glyph: "░"},
		"tide":  {Kind: "text", Color: "#0f3b4c", FG: "#7fd1e0", Text: "~ ~ ~ ~ ~\n ~ ~ ~ ~ \n~ ~ ~ ~ ~"},
		"moss":  {Kind: "fill", Color: "#2d4a2b", FG: "#5e8c4a", Glyph: "▒"},
		"ember": {Kind: "text", Color: "#4a1f14", FG: "#f08a4b", Text: "  )  \n ) \\ \n(  ) \n \\_/ "},
	}
	return refs, defs
}
