package main

import (
	"fmt"

	hl7 "github.com/jamerfort/tclhl7"
	"github.com/jamerfort/tclhl7/encode"
	"github.com/jamerfort/tclhl7/ir"
	"github.com/jamerfort/tclhl7/ir/addr"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a query argument", cli.ErrUsage)
	}
	q := args[0]
	addrColor := fmt.Sprintf
	if cfg.colorize(cc.Out) {
		addrColor = color.RGB(128, 168, 196).SprintfFunc()
	}
	for _, arg := range messageArgs(args[1:]) {
		msg, err := readMessage(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		err = hl7.Each(msg, q, func(v *ir.Node, address string) error {
			a, _ := addr.Parse(address)
			rendered := encode.NodeString(v, ir.Level(a.Depth()), msg.Separators())
			_, err := fmt.Fprintf(cc.Out, "%s\t%s\n", addrColor("%s", address), rendered)
			return err
		}, hl7.Expand(cfg.Expand), hl7.Reverse(cfg.Reverse))
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, q, err)
		}
	}
	return nil
}

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a query argument", cli.ErrUsage)
	}
	q := args[0]
	for _, arg := range messageArgs(args[1:]) {
		msg, err := readMessage(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		addrs, err := hl7.Query(msg, q, hl7.Expand(cfg.Expand), hl7.Reverse(cfg.Reverse))
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, q, err)
		}
		for _, a := range addrs {
			if _, err := fmt.Fprintln(cc.Out, a); err != nil {
				return err
			}
		}
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range messageArgs(args) {
		msg, err := readMessage(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out, encode.ColorString(msg.Tree(), msg.Separators(), encode.NewColors())); err != nil {
			return err
		}
	}
	return nil
}
