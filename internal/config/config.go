package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vigor/internal/engine/cursor"
)

// Options holds the editor settings the engine consumes. Fields map
// one-to-one onto the TOML configuration file.
type Options struct {
	// VirtualEdit is the 'virtualedit' setting: "", "block", "insert",
	// "onemore", or "all".
	VirtualEdit string `toml:"virtualedit"`

	// TabStop is the display width of a tab character.
	TabStop int `toml:"tabstop"`

	// Selection is the 'selection' setting: "inclusive", "exclusive",
	// or "old".
	Selection string `toml:"selection"`

	// Hidden allows abandoning a modified buffer without writing it.
	Hidden bool `toml:"hidden"`
}

// Default returns the stock settings.
func Default() Options {
	return Options{
		VirtualEdit: "",
		TabStop:     8,
		Selection:   "inclusive",
		Hidden:      false,
	}
}

// ParseError describes a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads settings from a TOML file. A missing file is not an
// error; the defaults are returned. Settings absent from the file keep
// their default values.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFromReader reads settings from an io.Reader.
func LoadFromReader(r io.Reader) (Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Default(), fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (Options, error) {
	opts := Default()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Default(), &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	if err := opts.Validate(); err != nil {
		return Default(), &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return opts, nil
}

// Validate checks the settings for values the engine cannot honor.
func (o Options) Validate() error {
	switch o.VirtualEdit {
	case "", "block", "insert", "onemore", "all":
	default:
		return fmt.Errorf("unknown virtualedit value %q", o.VirtualEdit)
	}
	switch o.Selection {
	case "inclusive", "exclusive", "old":
	default:
		return fmt.Errorf("unknown selection value %q", o.Selection)
	}
	if o.TabStop < 1 {
		return fmt.Errorf("tabstop must be positive, got %d", o.TabStop)
	}
	return nil
}

// VirtualEditMode translates the setting into the cursor package's
// enum.
func (o Options) VirtualEditMode() cursor.VirtualEdit {
	switch o.VirtualEdit {
	case "block":
		return cursor.VirtualEditBlock
	case "insert":
		return cursor.VirtualEditInsert
	case "onemore":
		return cursor.VirtualEditOneMore
	case "all":
		return cursor.VirtualEditAll
	default:
		return cursor.VirtualEditNone
	}
}

// SelectionOld reports whether 'selection' is "old", which keeps the
// cursor off the position one past end of line in visual mode.
func (o Options) SelectionOld() bool {
	return o.Selection == "old"
}
