package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
	HCLFormat
	TOMLFormat
)

var ErrBadFormat = errors.New("bad format")

var names = map[string]Format{
	"t":    TextFormat,
	"text": TextFormat,
	"y":    YAMLFormat,
	"yaml": YAMLFormat,
	"j":    JSONFormat,
	"json": JSONFormat,
	"h":    HCLFormat,
	"hcl":  HCLFormat,
	"toml": TOMLFormat,
}

func ParseFormat(v string) (Format, error) {
	f, ok := names[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromSuffix guesses the format of a file from its name.
func FromSuffix(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".json":
		return JSONFormat, true
	case ".hcl":
		return HCLFormat, true
	case ".toml":
		return TOMLFormat, true
	case ".txt":
		return TextFormat, true
	}
	return 0, false
}

// Suffix returns the file extension for f.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case HCLFormat:
		return ".hcl"
	case TOMLFormat:
		return ".toml"
	case TextFormat:
		return ".txt"
	default:
		return ".yaml"
	}
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case HCLFormat:
		return []byte("hcl"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// CanParse reports whether trees can be read in format f.
func (f Format) CanParse() bool { return f != TextFormat }

// CanEncode reports whether trees can be written in format f.
func (f Format) CanEncode() bool {
	return f == TextFormat || f == JSONFormat || f == YAMLFormat
}
