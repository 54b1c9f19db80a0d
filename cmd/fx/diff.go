package main

import (
	"bytes"
	"fmt"

	"github.com/fundsxml/flatxml/debug"
	"github.com/fundsxml/flatxml/dom"
	"github.com/fundsxml/flatxml/encode"
	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := diffEntries(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := diffEntries(cfg, args[1])
	if err != nil {
		return err
	}
	report := libdiff.Make(from, to)
	if debug.Diff() {
		debug.Logf("diff %s %s: %d removed, %d added, %d changed\n",
			args[0], args[1], len(report.Removed), len(report.Added), len(report.Changed))
	}
	if report.Empty() {
		return nil
	}
	if err := report.Fprint(cc.Out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func diffEntries(cfg *DiffConfig, arg string) ([]flat.Entry, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	if !cfg.Xml {
		return cfg.readEntries(d)
	}
	node, err := dom.Decode(bytes.NewReader(d))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	entries, err := encode.Entries(node)
	if err != nil {
		return nil, fmt.Errorf("error flattening %s: %w", arg, err)
	}
	return entries, nil
}
