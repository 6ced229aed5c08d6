// Package config loads the slicer configuration file.
//
// # Configuration Discovery
//
// Load reads the path it is given, or ~/.config/slicer/config.toml when the
// path is empty. Files ending in .yaml or .yml are parsed with yaml.v3;
// everything else is TOML. A missing file is an error wrapping
// os.ErrNotExist so the caller can fall back to Demo.
//
// # TOML Format
//
//	duration = "450ms"
//	easing = "ease"
//	leave_delay = "50ms"
//	close_mode = "slide-out"   # or "stay"
//	hover = true
//	log_file = "~/.local/state/slicer/slicer.log"
//	log_level = "info"
//
//	sources = ["intro", { id = "city", label = "City" }]
//
//	[content.intro]
//	kind = "fill"
//	color = "#5f87af"
//	glyph = "░"
//
//	[content.city]
//	kind = "image"
//	path = "city.png"
//
// Every field except sources is optional. Relative content paths resolve
// against the directory holding the config file. Tilde expansion applies to
// the config path and log_file.
//
// # Error Handling
//
// Load returns wrapped errors for unreadable or unparsable files, invalid
// durations, easings, close modes and log levels, and ErrNoSources when no
// source entry carries an identifier.
package config
