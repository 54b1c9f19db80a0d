package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fundsxml/flatxml/encode"
	"github.com/fundsxml/flatxml/flat"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render flat lines with color'"`

	L bool `cli:"name=l aliases=lines desc='flat i/o as path|value lines (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='flat i/o as yaml'"`
	J bool `cli:"name=j aliases=json desc='flat i/o as json'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func fxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.L, cfg.Y, cfg.J) > 1 {
		return fmt.Errorf("%w: must specify at most one of -l[ines] -y[aml] -j[son]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// writeEntries writes a flat entry set in the selected exchange form:
// lines (default, colored on a tty), yaml, or json.
func (cfg *MainConfig) writeEntries(w io.Writer, entries []flat.Entry) error {
	switch {
	case cfg.Y:
		d, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case cfg.J:
		d, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	default:
		return encode.EncodeEntries(entries, w, cfg.encOpts(w)...)
	}
}

// readEntries reads a flat entry set in the selected exchange form.
func (cfg *MainConfig) readEntries(d []byte) ([]flat.Entry, error) {
	var entries []flat.Entry
	switch {
	case cfg.Y:
		if err := yaml.Unmarshal(d, &entries); err != nil {
			return nil, err
		}
	case cfg.J:
		if err := json.Unmarshal(d, &entries); err != nil {
			return nil, err
		}
	default:
		lines, err := flat.ParseLines(d)
		if err != nil {
			return nil, err
		}
		return lines, nil
	}
	return entries, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

// readArg reads a file argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type FlattenConfig struct {
	*MainConfig

	Flatten *cli.Command
}

type BuildConfig struct {
	*MainConfig

	All bool `cli:"name=a aliases=all desc='collect all violations instead of stopping at the first'"`

	Build *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Xml bool `cli:"name=x aliases=xml desc='arguments are XML documents, flatten before diffing'"`

	Diff *cli.Command
}

type GrepConfig struct {
	*MainConfig

	Grep *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
