package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"ssubmit.io/core"
	"ssubmit.io/logger"
)

// Exit codes surfaced to the calling shell. When the scheduler client
// itself fails its exit code is propagated unmodified.
const (
	exitOK     = 0
	exitUsage  = 1
	exitMemory = 2
	exitTime   = 3
	exitSpec   = 4
	exitScript = 5
)

var opts Options
var parser = flags.NewNamedParser(SsubmitName, flags.HelpFlag|flags.PassDoubleDash)

func init() {
	parser.Usage = SsubmitUsage
	parser.LongDescription = SsubmitDesc
	parser.AddGroup("Application Options", "", &opts)
}

func printHelp(parser *flags.Parser) {
	var b bytes.Buffer
	parser.WriteHelp(&b)
	fmt.Println(b.String())
}

// preprocessArgs splits the command line at the first standalone "--";
// everything after it belongs to the scheduler client, not to us.
func preprocessArgs(args []string) (own, remainder []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func main() {
	own, remainder := preprocessArgs(os.Args[1:])
	if _, err := parser.ParseArgs(own); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			printHelp(parser)
			os.Exit(exitOK)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	logger.SetQuiet(opts.Quiet)

	spec, err := buildJobSpec(&opts, remainder)
	if err != nil {
		logger.ErrorPrintf("%v\n", err)
		os.Exit(errorExitCode(err))
	}

	inv := core.BuildInvocation(spec)
	logger.DebugObj("invocation", inv)

	if opts.DryRun {
		display(inv)
		os.Exit(exitOK)
	}
	os.Exit(execute(inv))
}

func errorExitCode(err error) int {
	var memErr *core.MemoryParseError
	var timeErr *core.TimeParseError
	var specErr *core.InvalidJobSpecError
	switch {
	case errors.As(err, &memErr):
		return exitMemory
	case errors.As(err, &timeErr):
		return exitTime
	case errors.As(err, &specErr):
		return exitSpec
	}
	return exitUsage
}
