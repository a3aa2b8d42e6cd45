package main

import (
	"fmt"

	"github.com/npillmayer/kadane"
	"github.com/npillmayer/kadane/seqfile"
)

type SumCommand struct {
	InputOptions
}

func (c *SumCommand) Execute(args []string) error {
	if c.Float {
		return printSum[float64](c.InputOptions, args, seqfile.ParseFloat)
	}
	return printSum[int64](c.InputOptions, args, seqfile.ParseInt)
}

func printSum[T kadane.Number](in InputOptions, args []string, parse seqfile.ParseFunc[T]) error {
	seq, err := readNumbers(in, args, parse)
	if err != nil {
		return err
	}
	sum, ok := kadane.MaxSum(seq.Values())
	if !ok {
		fmt.Fprintf(stdout, "no result: %s\n", kadane.ErrEmptyInput)
		return nil
	}
	fmt.Fprintln(stdout, sum)
	return nil
}

func init() {
	_, err := parser.AddCommand("sum",
		"print maximum subarray sum",
		"prints the largest sum of a contiguous subarray of the input numbers",
		&SumCommand{})
	if err != nil {
		panic(err.Error())
	}
}
