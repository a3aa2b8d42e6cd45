package main

import (
	"strings"

	"github.com/npillmayer/kadane"
	"github.com/npillmayer/kadane/seqfile"
)

// InputOptions select where numbers are read from and how they are parsed.
type InputOptions struct {
	File     string `short:"f" long:"file" description:"read numbers from file instead of arguments or stdin"`
	Float    bool   `long:"float" description:"parse numbers as floating point instead of integers"`
	FragSize int    `long:"frag-size" description:"number of values per fragment when loading" default:"0"`
}

func readNumbers[T kadane.Number](in InputOptions, args []string, parse seqfile.ParseFunc[T]) (*seqfile.Sequence[T], error) {
	switch {
	case len(args) > 0:
		return seqfile.Read(strings.NewReader(strings.Join(args, " ")), in.FragSize, parse)
	case in.File != "":
		return seqfile.Load(in.File, in.FragSize, parse)
	default:
		return seqfile.Read(stdin, in.FragSize, parse)
	}
}
