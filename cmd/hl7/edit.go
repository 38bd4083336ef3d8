package main

import (
	"fmt"

	hl7 "github.com/jamerfort/tclhl7"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var q, value string
	switch {
	case cfg.Clear && len(args) >= 1:
		q = args[0]
		args = args[1:]
	case !cfg.Clear && len(args) >= 2:
		q, value = args[0], args[1]
		args = args[2:]
	default:
		return fmt.Errorf("%w: set requires a query and a value", cli.ErrUsage)
	}
	for _, arg := range messageArgs(args) {
		msg, err := readMessage(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		msg, err = hl7.Set(msg, q, value)
		if err != nil {
			return fmt.Errorf("error setting %s in %s: %w", q, arg, err)
		}
		if err := writeData(cc, msg); err != nil {
			return err
		}
	}
	return nil
}

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: delete requires a query argument", cli.ErrUsage)
	}
	q := args[0]
	for _, arg := range messageArgs(args[1:]) {
		msg, err := readMessage(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		msg, err = hl7.Delete(msg, q)
		if err != nil {
			return fmt.Errorf("error deleting %s in %s: %w", q, arg, err)
		}
		if err := writeData(cc, msg); err != nil {
			return err
		}
	}
	return nil
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: add requires a query and a value", cli.ErrUsage)
	}
	q, value := args[0], args[1]
	for _, arg := range messageArgs(args[2:]) {
		msg, err := readMessage(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		msg, err = hl7.Add(msg, q, value)
		if err != nil {
			return fmt.Errorf("error adding to %s in %s: %w", q, arg, err)
		}
		if err := writeData(cc, msg); err != nil {
			return err
		}
	}
	return nil
}

func insert(cfg *InsertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Insert.Parse(cc, args)
	if err != nil {
		cfg.Insert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: insert requires a query and a value", cli.ErrUsage)
	}
	q, value := args[0], args[1]
	ins := hl7.InsertBefore
	if cfg.After {
		ins = hl7.InsertAfter
	}
	for _, arg := range messageArgs(args[2:]) {
		msg, err := readMessage(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		msg, err = ins(msg, q, value)
		if err != nil {
			return fmt.Errorf("error inserting at %s in %s: %w", q, arg, err)
		}
		if err := writeData(cc, msg); err != nil {
			return err
		}
	}
	return nil
}
