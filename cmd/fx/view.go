package main

import (
	"fmt"

	"github.com/fundsxml/flatxml/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		entries, err := cfg.readEntries(d)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		opts := []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
		if err := encode.EncodeEntries(entries, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
