package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/encode"
	"github.com/signadot/paramtree/format"
	"github.com/signadot/paramtree/logstream"
	"github.com/signadot/paramtree/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output json in compact format'"`
	Sort    bool `cli:"name=sort desc='sort block parameters by name'"`
	Headers bool `cli:"name=H aliases=headers desc='prefix output lines with the input index'"`
	Indent  int  `cli:"name=indent desc='indentation for json and yaml output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// parseOpts returns the options for parsing path.  With no format flag
// the format follows the file suffix, as in parse.ParseFile.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	res := []parse.ParseOption{parse.ParseFilename(path)}
	if path != "-" {
		res = append(res, parse.ParseScope(path))
	}
	switch {
	case cfg.InFormat != nil:
		res = append(res, parse.ParseFormat(*cfg.InFormat))
	case cfg.Y:
		res = append(res, parse.ParseYAML())
	case cfg.J:
		res = append(res, parse.ParseJSON())
	default:
		if f, ok := format.FromSuffix(path); ok {
			res = append(res, parse.ParseFormat(f))
		}
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// stream returns the stream to which the output for input i is written.
func (cfg *MainConfig) stream(w io.Writer, i int) *logstream.Stream {
	if !cfg.Headers {
		return logstream.New(w, "")
	}
	var opts []logstream.Option
	if cfg.colors(w) {
		opts = append(opts, logstream.WithColor(color.FgHiBlack))
	}
	return logstream.Location(w, i, opts...)
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='allow wildcards and print every match'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='line diff of the sorted dumps'"`
	Merge   bool `cli:"name=merge desc='output a json merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Op   string `cli:"name=op desc='operation to apply the patch object with'"`
	Tags bool   `cli:"name=tags desc='show available operations'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Env  map[string]any
	List bool `cli:"name=l aliases=list desc='list the source files in merge order'"`

	Build *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim bool `cli:"name=trim desc='trim the results to the pattern'"`

	Match *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env  map[string]any
	Expr string `cli:"name=x desc='evaluate an expression against each input'"`

	Eval *cli.Command
}
