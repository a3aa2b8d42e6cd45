package main

import (
	"fmt"

	"github.com/npillmayer/kadane"
	"github.com/npillmayer/kadane/format"
	"github.com/npillmayer/kadane/seqfile"
)

type RangeCommand struct {
	InputOptions
	Format string `long:"format" description:"rendering of the input with the subarray marked" choice:"none" choice:"plain" choice:"console" choice:"html" default:"plain"`
}

func (c *RangeCommand) Execute(args []string) error {
	if c.Float {
		return printRange[float64](c, args, seqfile.ParseFloat)
	}
	return printRange[int64](c, args, seqfile.ParseInt)
}

func printRange[T kadane.Number](c *RangeCommand, args []string, parse seqfile.ParseFunc[T]) error {
	seq, err := readNumbers(c.InputOptions, args, parse)
	if err != nil {
		return err
	}
	sum, r, ok := kadane.MaxRange(seq.Values())
	if !ok {
		fmt.Fprintf(stdout, "no result: %s\n", kadane.ErrEmptyInput)
		return nil
	}
	fmt.Fprintf(stdout, "sum %v range %v\n", sum, r)
	var f format.Format
	var config *format.Config
	switch c.Format {
	case "plain":
		f = format.Plain{}
	case "console":
		f, config = format.NewConsole(nil), format.ConfigFromTerminal()
	case "html":
		f = format.NewHTML()
	default:
		return nil
	}
	if err := format.Print(f, stdout, seq.Values(), r, config); err != nil {
		return err
	}
	if c.Format != "console" {
		fmt.Fprintln(stdout)
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("range",
		"print maximum subarray sum and range",
		"prints the largest sum of a contiguous subarray of the input numbers, its half-open range [start,end) and the input with the subarray marked",
		&RangeCommand{})
	if err != nil {
		panic(err.Error())
	}
}
