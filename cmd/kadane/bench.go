package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/kadane/bench"
)

type BenchCommand struct {
	Samples  string `long:"samples" description:"YAML file of samples, default is built-in samples"`
	Rounds   int    `long:"rounds" description:"rounds per sample" default:"10000"`
	Progress bool   `long:"progress" description:"report finished samples on stderr while running"`
}

func (c *BenchCommand) Execute(args []string) error {
	samples := bench.DefaultSamples()
	if c.Samples != "" {
		f, err := os.Open(c.Samples)
		if err != nil {
			return err
		}
		samples, err = bench.LoadSamples(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	rn := bench.NewRunner(c.Rounds)
	defer rn.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	if c.Progress {
		progress := rn.Subscribe(ctx)
		go func() {
			defer close(done)
			for r := range progress {
				fmt.Fprintf(stderr, "done: %s\n", r.Sample)
			}
		}()
	} else {
		close(done)
	}
	results, err := rn.Run(ctx, samples)
	rn.Close() // drains progress, then closes it
	<-done
	for _, r := range results {
		printResult(r)
	}
	return err
}

func printResult(r bench.Result) {
	if !r.OK {
		fmt.Fprintf(stdout, "%-16s n=%-6d no result\n", r.Sample, r.Len)
		return
	}
	var sum any = r.Sum
	if r.Ints {
		sum = r.IntSum
	}
	fmt.Fprintf(stdout, "%-16s n=%-6d sum=%-8v range=%-10v %v/round\n",
		r.Sample, r.Len, sum, r.Range, r.PerRound())
}

func init() {
	_, err := parser.AddCommand("bench",
		"run samples repeatedly",
		"runs maximum subarray operations repeatedly on fixed samples and reports time per round",
		&BenchCommand{})
	if err != nil {
		panic(err.Error())
	}
}
