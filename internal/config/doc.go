// Package config loads the editor settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. The TOML file ($XDG_CONFIG_HOME/barcode/config.toml or -config)
//  3. BARCODE_* environment variables
//
// The merged result is decoded into a typed Config and validated. The
// watcher sub-package reports edits to the file so a running editor can
// reload it.
//
// Example file:
//
//	[editor]
//	scrollMargin = 4
//	pollInterval = 500
//
//	[ui]
//	cursorGlyph = "│"
//	secondaryCursorColor = "#0000FF"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/barcode.log"
//
//	[plugins]
//	initScript = "~/.config/barcode/init.lua"
package config
