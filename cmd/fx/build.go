package main

import (
	"fmt"

	"github.com/fundsxml/flatxml/debug"
	"github.com/fundsxml/flatxml/dom"
	"github.com/fundsxml/flatxml/parse"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	pOpts := []parse.ParseOption{parse.Accumulate(cfg.All)}
	for _, arg := range argsOrStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		entries, err := cfg.readEntries(d)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		root, err := parse.FromEntries(entries, pOpts...)
		if err != nil {
			return fmt.Errorf("error building %s: %w", arg, err)
		}
		if debug.Parse() {
			debug.Logf("built %s from %d entries\n", arg, len(entries))
		}
		if err := dom.Encode(root, cc.Out); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
