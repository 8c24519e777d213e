// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command int24 inspects 24-bit values and evaluates checked arithmetic on them.
//
//	int24 inspect -- -1 0x123456
//	int24 --unsigned calc 16777215 + 1
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/avdva/int24"
	"github.com/avdva/int24/bitfmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

var errUsage = errors.New("bad usage")

func newApp() *cli.App {
	return &cli.App{
		Name:  "int24",
		Usage: "24-bit integer calculator and inspector",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "one of debug, info, warn, error, fatal",
				Value:   "info",
				EnvVars: []string{"INT24_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "unsigned",
				Aliases: []string{"u"},
				Usage:   "parse operands as UInt24 instead of Int24",
				EnvVars: []string{"INT24_UNSIGNED"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := log.ParseLevel(cCtx.String("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Aliases:   []string{"i"},
				Usage:     "print both interpretations, bit patterns and encodings of values",
				ArgsUsage: "<value>...",
				Action:    inspectEntrypoint,
			},
			{
				Name:      "calc",
				Aliases:   []string{"c"},
				Usage:     "evaluate a checked binary operation: + - * / % & | ^ &^ << >>",
				ArgsUsage: "<lhs> <op> <rhs>",
				Action:    calcEntrypoint,
			},
		},
	}
}

func inspectEntrypoint(cCtx *cli.Context) error {
	if cCtx.NArg() == 0 {
		return fmt.Errorf("%w: inspect needs at least one value", errUsage)
	}
	for i, arg := range cCtx.Args().Slice() {
		s, u, err := parseBoth(arg, cCtx.Bool("unsigned"))
		if err != nil {
			log.Error("cannot parse value", "arg", arg, "err", err)
			return err
		}
		if i > 0 {
			fmt.Fprintln(cCtx.App.Writer)
		}
		inspect(cCtx.App.Writer, s, u)
	}
	return nil
}

// parseBoth parses s as one of the types and reinterprets its bits as the other.
func parseBoth(s string, unsigned bool) (int24.Int24, int24.UInt24, error) {
	if unsigned {
		u, err := int24.ParseUInt24(s)
		return int24.Int24FromBits(u), u, err
	}
	v, err := int24.ParseInt24(s)
	return v, int24.UInt24FromBits(v), err
}

func inspect(w io.Writer, s int24.Int24, u int24.UInt24) {
	fmt.Fprintf(w, "int24:   %d\n", s)
	fmt.Fprintf(w, "uint24:  %d\n", u)
	fmt.Fprintf(w, "hex:     %s\n", bitfmt.Hex(s))
	fmt.Fprintf(w, "bin:     %s\n", bitfmt.Bin(s))
	fmt.Fprintf(w, "be:      % x\n", s.AppendBigEndian(nil))
	fmt.Fprintf(w, "le:      % x\n", s.AppendLittleEndian(nil))
	fmt.Fprintf(w, "swapped: %d / %d\n", s.ReverseBytes(), u.ReverseBytes())
	fmt.Fprintf(w, "bits:    ones=%d leading=%d trailing=%d\n", u.OnesCount(), u.LeadingZeros(), u.TrailingZeros())
}

func calcEntrypoint(cCtx *cli.Context) error {
	if cCtx.NArg() != 3 {
		return fmt.Errorf("%w: calc needs <lhs> <op> <rhs>, got %d args", errUsage, cCtx.NArg())
	}
	args := cCtx.Args()
	if cCtx.Bool("unsigned") {
		return calc(cCtx.App.Writer, args.Get(0), args.Get(1), args.Get(2), int24.ParseUInt24)
	}
	return calc(cCtx.App.Writer, args.Get(0), args.Get(1), args.Get(2), int24.ParseInt24)
}

func calc[T int24.Integer[T]](w io.Writer, lhsArg, op, rhsArg string, parse func(string) (T, error)) error {
	lhs, err := parse(lhsArg)
	if err != nil {
		log.Error("cannot parse lhs", "arg", lhsArg, "err", err)
		return err
	}
	rhs, err := parse(rhsArg)
	if err != nil {
		log.Error("cannot parse rhs", "arg", rhsArg, "err", err)
		return err
	}
	result, overflow, err := evaluate(lhs, op, rhs)
	if err != nil {
		return err
	}
	log.Debug("evaluated", "lhs", lhs, "op", op, "rhs", rhs, "result", result, "overflow", overflow)
	fmt.Fprintf(w, "%d\n", result)
	if overflow {
		log.Warn("overflow", "lhs", lhs, "op", op, "rhs", rhs, "partial", result)
		return fmt.Errorf("%w in %v %s %v", int24.ErrOverflow, lhs, op, rhs)
	}
	return nil
}

// evaluate applies a binary operator with overflow reporting.
func evaluate[T int24.Integer[T]](lhs T, op string, rhs T) (result T, overflow bool, err error) {
	switch op {
	case "+":
		result, overflow = lhs.AddOverflow(rhs)
	case "-":
		result, overflow = lhs.SubOverflow(rhs)
	case "*", "x":
		result, overflow = lhs.MulOverflow(rhs)
	case "/":
		result, overflow = lhs.DivOverflow(rhs)
	case "%":
		result, overflow = lhs.RemOverflow(rhs)
	case "&":
		result = lhs.And(rhs)
	case "|":
		result = lhs.Or(rhs)
	case "^":
		result = lhs.Xor(rhs)
	case "&^":
		result = lhs.AndNot(rhs)
	case "<<", ">>":
		n := rhs.Int64()
		if n < 0 || n >= int24.BitWidth {
			return result, false, fmt.Errorf("%w: %d", int24.ErrShift, n)
		}
		if op == "<<" {
			result = lhs.Lsh(uint(n))
		} else {
			result = lhs.Rsh(uint(n))
		}
	default:
		return result, false, fmt.Errorf("%w: unknown operator %q", errUsage, op)
	}
	return result, overflow, nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
