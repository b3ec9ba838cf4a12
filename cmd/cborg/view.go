package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cborg/go-cborg/decode"
	"github.com/cborg/go-cborg/text"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	pOpts := cfg.printOpts(cc.Out)
	for _, arg := range inputs(args) {
		if err := viewArg(cfg, cc, arg, pOpts); err != nil {
			return fmt.Errorf("error viewing %s: %w", arg, err)
		}
	}
	return nil
}

func viewArg(cfg *ViewConfig, cc *cli.Context, arg string, pOpts []text.PrintOption) error {
	data, err := readArg(arg)
	if err != nil {
		return err
	}
	dec := decode.NewDecoder(data, cfg.decodeOpts()...)
	for len(dec.Rest()) > 0 {
		v, err := dec.Next()
		if err != nil {
			return err
		}
		if err := text.Fprint(cc.Out, v, pOpts...); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out); err != nil {
			return err
		}
	}
	return nil
}
