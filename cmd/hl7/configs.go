package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jamerfort/tclhl7/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Sep   string `cli:"name=sep desc='segment separator: cr, lf, crlf (default cr)'"`
	Color bool   `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() ([]parse.ParseOption, error) {
	switch strings.ToLower(cfg.Sep) {
	case "", "cr":
		return nil, nil
	case "lf":
		return []parse.ParseOption{parse.SegmentSeparator('\n')}, nil
	case "crlf":
		return nil, fmt.Errorf("%w: crlf input: strip the line feeds first", cli.ErrUsage)
	default:
		if len(cfg.Sep) == 1 {
			return []parse.ParseOption{parse.SegmentSeparator(cfg.Sep[0])}, nil
		}
		return nil, fmt.Errorf("%w: bad separator %q", cli.ErrUsage, cfg.Sep)
	}
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
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

type GetConfig struct {
	*MainConfig

	Expand  bool `cli:"name=e aliases=expand desc='permit addresses beyond current length'"`
	Reverse bool `cli:"name=r aliases=reverse desc='descending address order'"`

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Expand  bool `cli:"name=e aliases=expand desc='permit addresses beyond current length'"`
	Reverse bool `cli:"name=r aliases=reverse desc='descending address order'"`

	Query *cli.Command
}

type SetConfig struct {
	*MainConfig

	Clear bool `cli:"name=clear desc='set matched nodes to the empty string'"`

	Set *cli.Command
}

type DeleteConfig struct {
	*MainConfig

	Delete *cli.Command
}

type AddConfig struct {
	*MainConfig

	Add *cli.Command
}

type InsertConfig struct {
	*MainConfig

	After bool `cli:"name=after desc='insert after each match instead of before'"`

	Insert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
