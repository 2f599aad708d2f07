package main

import (
	"strings"

	"ssubmit.io/config"
	"ssubmit.io/core"
	"ssubmit.io/logger"
)

const (
	SsubmitName  = `ssubmit`
	SsubmitUsage = `[OPTIONS] name [command] [-- scheduler args...]`
	SsubmitDesc  = `Submit sbatch jobs without having to create a submission script. ` +
		`The command is inserted into a generated script and handed to sbatch; ` +
		`everything after '--' goes to the scheduler client verbatim. ` +
		`With --interactive the request goes to salloc and the command, which ` +
		`defaults to a login shell, runs under 'srun --pty'.`
)

// Options are the command line flags. Flag values beat environment
// variables, which beat the config file, which beats built-ins; an
// unset field here means "fall through to the next layer". Set is a
// pointer so that an explicit -s '' survives resolution.
type Options struct {
	Output      string  `short:"o" long:"output" description:"File to write job stdout to [default: %x.out]"`
	Error       string  `short:"e" long:"error" description:"File to write job stderr to [default: %x.err]"`
	Memory      string  `short:"m" long:"mem" value-name:"size[unit]" description:"Memory to request per node, e.g. 4.3kb, 7G, 9000. A bare number is megabytes and values round up; 0 requests the cluster default [default: 1G]"`
	Time        string  `short:"t" long:"time" description:"Time limit, e.g. 5d, 10h, 45m21s. Anything in the scheduler's own format, including a bare number of minutes, passes through untouched [default: 1d]"`
	Shebang     string  `short:"S" long:"shebang" description:"Interpreter directive for the submission script [default: #!/usr/bin/env bash]"`
	Set         *string `short:"s" long:"set" description:"Options for the set command in the script [default: euxo pipefail]"`
	DryRun      bool    `short:"n" long:"dry-run" description:"Print the submission command and script without submitting"`
	TestOnly    bool    `short:"T" long:"test-only" description:"Ask the scheduler when the job would run, without submitting"`
	Interactive bool    `short:"i" long:"interactive" description:"Request an interactive session instead of a batch job"`
	Shell       string  `long:"shell" description:"Shell for interactive sessions [default: auto]"`
	Export      string  `long:"export" description:"Environment variables to propagate into the job [default: ALL]"`
	Quiet       bool    `short:"q" long:"quiet" description:"Only log errors"`
	Config      string  `long:"config" description:"Path to the config file [default: ~/.config/ssubmit/config.yaml]"`
	Args        struct {
		Name    string   `positional-arg-name:"name" description:"Name of the job"`
		Command []string `positional-arg-name:"command" description:"Command to be executed by the job"`
	} `positional-args:"true" required:"1"`
}

// buildJobSpec resolves flags, environment and config file into a
// validated job request. remainder is everything after '--' on the
// command line.
func buildJobSpec(opts *Options, remainder []string) (core.JobSpec, error) {
	defaults, err := config.Load(opts.Config)
	if err != nil {
		return core.JobSpec{}, err
	}

	memory, err := core.ParseMemory(valueOr(opts.Memory, defaults.Memory))
	if err != nil {
		return core.JobSpec{}, err
	}
	if memory.Default {
		logger.WarningPrintf("memory requested was zero; the cluster default applies. " +
			"Run scontrol show config | grep -i DefMem to see it\n")
	}

	limit, err := core.ParseTime(valueOr(opts.Time, defaults.Time))
	if err != nil {
		return core.JobSpec{}, err
	}
	if limit.Default() {
		logger.WarningPrintf("time requested was zero; the partition's default limit applies\n")
	}

	setFlags := defaults.Set
	if opts.Set != nil {
		setFlags = *opts.Set
	}

	mode := core.Batch
	if opts.Interactive {
		mode = core.Interactive
	}

	command := strings.Join(opts.Args.Command, " ")

	shell := valueOr(opts.Shell, defaults.Shell)
	if mode == core.Interactive && command == "" && shell == config.DefaultShell {
		shell = config.DetectShell()
		logger.InfoPrintf("using %s for the interactive session\n", shell)
	}

	spec := core.JobSpec{
		Name:       opts.Args.Name,
		Command:    command,
		Mode:       mode,
		Memory:     memory,
		Time:       limit,
		OutputPath: valueOr(opts.Output, defaults.Output),
		ErrorPath:  valueOr(opts.Error, defaults.Error),
		Shebang:    valueOr(opts.Shebang, defaults.Shebang),
		SetFlags:   setFlags,
		Export:     valueOr(opts.Export, defaults.Export),
		Shell:      shell,
		TestOnly:   opts.TestOnly,
		ExtraArgs:  remainder,
	}
	if err := spec.Validate(); err != nil {
		return core.JobSpec{}, err
	}
	return spec, nil
}

func valueOr(flag, fallthru string) string {
	if flag != "" {
		return flag
	}
	return fallthru
}
