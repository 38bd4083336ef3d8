package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	hl7 "github.com/jamerfort/tclhl7"

	"github.com/scott-cotton/cli"
)

func hl7Main(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readMessage loads one message argument; "-" reads stdin. Trailing
// line feeds from editors are tolerated by stripping \n when the
// segment separator is the default carriage return.
func readMessage(cfg *MainConfig, arg string) (hl7.Message, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return hl7.Message{}, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return hl7.Message{}, err
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return hl7.Message{}, err
	}
	text := string(d)
	if cfg.Sep == "" || strings.EqualFold(cfg.Sep, "cr") {
		text = strings.ReplaceAll(text, "\n", "")
	}
	msg, err := hl7.Parse(text, pOpts...)
	if err != nil {
		return hl7.Message{}, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	return msg, nil
}

// messageArgs defaults to stdin when no file arguments remain.
func messageArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeData(cc *cli.Context, msg hl7.Message) error {
	out, err := hl7.Data(msg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, out)
	return err
}
