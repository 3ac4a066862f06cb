// Package config provides the configuration system for the memento editor.
//
// Settings live in a single TOML file. Missing keys fall back to the
// built-in defaults, and a missing file yields the defaults unchanged.
//
// # File Format
//
//	[editor]
//	tab_width = 4
//	initial_text = ""
//
//	[history]
//	max_entries = 0   # 0 keeps every state
//	dedup = false
//
//	[theme]
//	background = "darkgray"
//	foreground = "lightgray"
//	cursor = "white"
//
//	[log]
//	level = "info"
//	file = ""
//
// # Live Reload
//
// Watch observes the file with fsnotify and delivers each successfully
// reloaded Config to a callback:
//
//	go config.Watch(ctx, path, func(cfg *config.Config) {
//	    hist.SetMaxEntries(cfg.History.MaxEntries)
//	}, nil)
package config
