// Command kadane finds maximum subarrays of numeric sequences.
//
//	kadane sum -2 1 -3 4 -1 2 1 -5 4
//	kadane range --format console --file numbers.txt
//	kadane bench --samples samples.yaml --rounds 100000
package main

import (
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

type Options struct {
	Trace string `long:"trace" description:"trace level" choice:"error" choice:"info" choice:"debug" default:"error"`
}

var opts = &Options{}

var parser = flags.NewParser(opts, flags.Default)

// output streams, replaced by tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	switch level {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

func Execute() error {
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupTracing(opts.Trace)
		return cmd.Execute(args)
	}
	if _, err := parser.Parse(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := Execute(); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("kadane: %s", err)
	}
}
