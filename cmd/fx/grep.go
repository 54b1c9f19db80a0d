package main

import (
	"fmt"

	"github.com/fundsxml/flatxml/debug"
	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/query"

	"github.com/scott-cotton/cli"
)

func grep(cfg *GrepConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grep.Parse(cc, args)
	if err != nil {
		cfg.Grep.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: grep requires a predicate argument", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	var hits []flat.Entry
	for _, arg := range argsOrStdin(args[1:]) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		entries, err := cfg.readEntries(d)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		hits, err = q.Filter(hits[:0], entries)
		if err != nil {
			return err
		}
		if debug.Query() {
			debug.Logf("%s matched %d of %d entries in %s\n", q, len(hits), len(entries), arg)
		}
		if err := cfg.writeEntries(cc.Out, hits); err != nil {
			return err
		}
	}
	return nil
}
