package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/cborg/go-cborg/decode"
	"github.com/cborg/go-cborg/text"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	NoColor bool `cli:"name=nocolor desc='force plain output'"`
	Compat  bool `cli:"name=compat desc='decode with the original cborg tag/float behavior'"`

	MaxDepth int

	Out      string
	CloseOut func() error

	Main *cli.Command
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

func (cfg *MainConfig) maxDepthOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil {
		return nil, fmt.Errorf("%w: maxdepth: %v", cli.ErrUsage, err)
	}
	cfg.MaxDepth = n
	return n, nil
}

func (cfg *MainConfig) decodeOpts() []decode.DecodeOption {
	var res []decode.DecodeOption
	if cfg.MaxDepth != 0 {
		res = append(res, decode.WithMaxDepth(cfg.MaxDepth))
	}
	if cfg.Compat {
		res = append(res, decode.WithLegacyTags(), decode.WithLegacyFloats())
	}
	return res
}

func (cfg *MainConfig) printOpts(w io.Writer) []text.PrintOption {
	if cfg.NoColor {
		return nil
	}
	if cfg.Color {
		return []text.PrintOption{text.PrintColors(text.NewColors())}
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return []text.PrintOption{text.PrintColors(text.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type TranscodeConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r aliases=reverse desc='convert text input to CBOR instead'"`

	JSON bool // json subcommand; otherwise yaml

	Cmd *cli.Command
}

// readArg returns the bytes of one input argument, "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// inputs defaults to stdin when no file arguments are given.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
