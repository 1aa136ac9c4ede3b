// Command scope plots the (sample, amplitude) lines read from its input.
//
// Usage:
//
//	scope [flags] [file ...]
//
// Without file arguments, or with "-", the lines are read from stdin.
//
// Examples:
//
//	fmbell | scope
//	scope -file out.svg -file out.png samples.csv
//	scope -type step -ydom -2:2 < samples.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	exitUsage = 1
	exitFail  = 2
)

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args, os.Getenv, os.Stdin, os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	if errors.Is(err, errUsage) {
		os.Exit(exitUsage)
	}
	os.Exit(exitFail)
}
