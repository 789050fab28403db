// Package config loads and writes try-rs settings.
//
// # Lookup
//
// The first existing file wins, where <name> is $TRY_CONFIG or config.toml:
//
//	$TRY_CONFIG_DIR/<name>
//	<user config dir>/try-rs/<name>
//	~/.config/try-rs/<name>
//	~/.try-rs/<name>
//
// # Format
//
//	tries_path = "~/work/tries"
//	theme = "Nord"
//	editor = "nvim"
//	apply_date_prefix = true
//	transparent_background = false
//
//	[colors]            # only used when theme is absent
//	title_try = "#89b4fa"
//
// TRY_PATH overrides tries_path. editor falls back to $VISUAL then $EDITOR.
//
// Save writes everything except [colors], so a custom palette is replaced by
// the name of the theme chosen in the picker.
package config
