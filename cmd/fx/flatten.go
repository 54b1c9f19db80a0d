package main

import (
	"bytes"
	"fmt"

	"github.com/fundsxml/flatxml/debug"
	"github.com/fundsxml/flatxml/dom"
	"github.com/fundsxml/flatxml/encode"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		cfg.Flatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := dom.Decode(bytes.NewReader(d))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		entries, err := encode.Entries(node)
		if err != nil {
			return fmt.Errorf("error flattening %s: %w", arg, err)
		}
		if debug.Encode() {
			debug.Logf("flattened %s to %d entries\n", arg, len(entries))
		}
		if err := cfg.writeEntries(cc.Out, entries); err != nil {
			return err
		}
	}
	return nil
}
