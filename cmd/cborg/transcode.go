package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/cborg/go-cborg/decode"
	"github.com/cborg/go-cborg/encode"
	"github.com/cborg/go-cborg/gomap"
)

func transcode(cfg *TranscodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputs(args) {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		if cfg.Reverse {
			err = textToCBOR(cfg, cc, data)
		} else {
			err = cborToText(cfg, cc, data)
		}
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func cborToText(cfg *TranscodeConfig, cc *cli.Context, data []byte) error {
	dec := decode.NewDecoder(data, cfg.decodeOpts()...)
	for len(dec.Rest()) > 0 {
		v, err := dec.Next()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(gomap.ToGo(v))
		if err != nil {
			return err
		}
		if cfg.JSON {
			if out, err = yaml.YAMLToJSON(out); err != nil {
				return err
			}
			out = append(out, '\n')
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// textToCBOR accepts YAML and, since YAML subsumes it, JSON.
func textToCBOR(cfg *TranscodeConfig, cc *cli.Context, data []byte) error {
	var x any
	if err := yaml.Unmarshal(data, &x); err != nil {
		return err
	}
	v, err := gomap.FromGo(x)
	if err != nil {
		return err
	}
	out, err := encode.Marshal(v)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}
