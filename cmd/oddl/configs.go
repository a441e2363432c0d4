package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/oddl-format/go-oddl/encode"
	"github.com/oddl-format/go-oddl/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='encode with color'"`
	Full       bool `cli:"name=full desc='full float precision (no rounding)'"`
	NoComments bool `cli:"name=nc desc='strip attached comments'"`

	Rounding  *int
	OutFormat *format.Format

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

func (cfg *MainConfig) fmtOpt(cc *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) roundOpt(cc *cli.Context, v string) (any, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: -r wants a non-negative integer", cli.ErrUsage)
	}
	cfg.Rounding = &n
	return n, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	switch {
	case cfg.Full:
		res = append(res, encode.FullPrecision())
	case cfg.Rounding != nil:
		res = append(res, encode.Rounding(*cfg.Rounding))
	}
	if cfg.NoComments {
		res = append(res, encode.EncodeComments(false))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ExampleConfig struct {
	*MainConfig

	Example *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
