package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/cborg/go-cborg/decode"
	"github.com/cborg/go-cborg/ir"
	"github.com/cborg/go-cborg/text"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element path", cli.ErrUsage)
	}
	path := args[0]
	pOpts := cfg.printOpts(cc.Out)
	for _, arg := range inputs(args[1:]) {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		v, err := decode.Decode(data, cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := walkPath(v, path)
		if err != nil {
			return fmt.Errorf("error getting %q from %s: %w", path, arg, err)
		}
		if err := text.Fprint(cc.Out, res, pOpts...); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out); err != nil {
			return err
		}
	}
	return nil
}

// walkPath resolves a dotted path of map keys and array indices. Numeric
// segments try an unsigned map key first, then an array index; anything
// else is a text map key.
func walkPath(v *ir.Value, path string) (*ir.Value, error) {
	for _, seg := range strings.Split(path, ".") {
		next, err := step(v, seg)
		if err != nil {
			return nil, err
		}
		v = next
	}
	return v, nil
}

func step(v *ir.Value, seg string) (*ir.Value, error) {
	u, numErr := strconv.ParseUint(seg, 10, 64)
	switch v.Type {
	case ir.MapType:
		if numErr == nil {
			if res := ir.Get(v, ir.FromUint(u)); res != nil {
				return res, nil
			}
		}
		if res := ir.GetString(v, seg); res != nil {
			return res, nil
		}
		return nil, fmt.Errorf("no entry with key %q", seg)
	case ir.ArrayType:
		if numErr != nil {
			return nil, fmt.Errorf("array index %q: %w", seg, numErr)
		}
		if u >= uint64(len(v.Values)) {
			return nil, fmt.Errorf("index %d out of range (%d elements)", u, len(v.Values))
		}
		return v.Values[u], nil
	}
	return nil, fmt.Errorf("cannot index %s with %q", v.Type, seg)
}
