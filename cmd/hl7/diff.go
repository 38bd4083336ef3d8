package main

import (
	"fmt"

	hl7 "github.com/jamerfort/tclhl7"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two message files", cli.ErrUsage)
	}
	a, err := readMessage(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := readMessage(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	changes, err := hl7.Diff(a, b)
	if err != nil {
		return err
	}
	minus, plus := fmt.Sprintf, fmt.Sprintf
	if cfg.colorize(cc.Out) {
		minus = color.RedString
		plus = color.GreenString
	}
	for _, c := range changes {
		switch {
		case c.PathA == "":
			fmt.Fprintln(cc.Out, plus("+ %s\t%s", c.PathB, c.To))
		case c.PathB == "":
			fmt.Fprintln(cc.Out, minus("- %s\t%s", c.PathA, c.From))
		default:
			fmt.Fprintln(cc.Out, minus("- %s\t%s", c.PathA, c.From))
			fmt.Fprintln(cc.Out, plus("+ %s\t%s", c.PathB, c.To))
		}
	}
	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
