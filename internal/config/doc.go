// Package config loads the editor settings the engine consumes from a
// TOML file: 'virtualedit', 'tabstop', 'selection', and 'hidden'.
//
// A missing file yields the defaults without error; a malformed file
// yields a *ParseError naming the source. Settings are validated on
// load, so the rest of the engine never sees an out-of-range value.
package config
