package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"ssubmit.io/core"
	"ssubmit.io/logger"
)

// display is the dry-run sink: print what would be executed and
// submit nothing.
func display(inv core.Invocation) {
	fmt.Printf("%s %s\n", inv.Program, strings.Join(inv.Args, " "))
	if inv.ScriptPayload != "" {
		fmt.Print(inv.ScriptPayload)
	}
}

// execute runs the scheduler client and returns the exit code to
// surface. A batch script is written to a transient file whose path is
// appended to the arguments; the file is removed once the client
// returns.
func execute(inv core.Invocation) int {
	args := append([]string{}, inv.Args...)
	if inv.ScriptPayload != "" {
		script, err := os.CreateTemp("", "ssubmit-*.sh")
		if err != nil {
			logger.ErrorPrintf("cannot create submission script: %v\n", err)
			return exitScript
		}
		defer os.Remove(script.Name())
		if _, err := script.WriteString(inv.ScriptPayload); err != nil {
			script.Close()
			logger.ErrorPrintf("cannot write submission script: %v\n", err)
			return exitScript
		}
		if err := script.Close(); err != nil {
			logger.ErrorPrintf("cannot write submission script: %v\n", err)
			return exitScript
		}
		args = append(args, script.Name())
	}

	logger.DebugPrintf("running %s %s\n", inv.Program, strings.Join(args, " "))
	cmd := exec.Command(inv.Program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		logger.ErrorPrintf("%s: %v\n", inv.Program, err)
		return exitUsage
	}
	return exitOK
}
