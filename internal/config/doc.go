// Package config provides the editor settings.
//
// Settings come from three layers, each overriding the one before:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, by default $XDG_CONFIG_HOME/tagedit/config.toml
//  3. TAGEDIT_* environment variables
//
// A config file looks like:
//
//	[editor]
//	tabSize = 4
//	pageLines = 10
//	selectStyle = "{blue-bg}"
//	insertMode = true
//
//	[log]
//	level = "info"
//	file = "/tmp/tagedit.log"
//
// Environment variables name a setting by section and key, as in
// TAGEDIT_EDITOR_TAB_SIZE, with the short forms TAGEDIT_TAB_SIZE,
// TAGEDIT_PAGE_LINES, TAGEDIT_LOG_LEVEL and TAGEDIT_LOG_FILE.
//
// A Watcher reloads the file when it changes so the editor can apply new
// settings without a restart.
package config
