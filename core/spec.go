// Package core turns a resolved job request into the scheduler client
// call that realizes it. It owns the memory and time normalizers, the
// submission script renderer and the invocation builder; it never
// touches the environment, the filesystem or the network.
package core

import "strings"

// Mode selects the scheduler client used to run the job.
type Mode int

const (
	Batch Mode = iota
	Interactive
)

// Scheduler client program names.
const (
	BatchProgram       = "sbatch"
	InteractiveProgram = "salloc"
)

// JobSpec is a fully-resolved job request. Every field holds a final
// value; defaults, environment variables and shell autodetection are
// the caller's business and happen before construction.
type JobSpec struct {
	Name       string
	Command    string
	Mode       Mode
	Memory     Memory
	Time       TimeLimit
	OutputPath string
	ErrorPath  string
	Shebang    string
	SetFlags   string
	Export     string
	Shell      string
	TestOnly   bool
	ExtraArgs  []string
}

// Validate rejects requests that cannot be submitted at all.
func (s JobSpec) Validate() error {
	if s.Name == "" {
		return &InvalidJobSpecError{Reason: "job name must not be empty"}
	}
	if s.Mode == Batch && s.Command == "" {
		return &InvalidJobSpecError{
			Reason: "a command is required for batch jobs; pass --interactive to request a session instead",
		}
	}
	return nil
}

// Invocation is the external scheduler command to run or display.
// ScriptPayload carries the batch script text; whether it is written
// to disk and submitted or merely printed is the caller's decision.
type Invocation struct {
	Program       string
	Args          []string
	ScriptPayload string
}

// BuildInvocation assembles the scheduler client call for spec.
func BuildInvocation(spec JobSpec) Invocation {
	if spec.Mode == Interactive {
		return buildInteractive(spec)
	}
	return buildBatch(spec)
}

func buildBatch(spec JobSpec) Invocation {
	var args []string
	if !hasExportFlag(spec.ExtraArgs) {
		args = append(args, "--export="+spec.Export)
	}
	if spec.TestOnly {
		args = append(args, "--test-only")
	}
	args = append(args, spec.ExtraArgs...)
	return Invocation{
		Program:       BatchProgram,
		Args:          args,
		ScriptPayload: RenderScript(spec),
	}
}

// hasExportFlag reports whether the pass-through arguments already set
// an export policy. The builder suppresses its own --export in that
// case; resolving a true duplicate is left to the scheduler client.
func hasExportFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--export" || strings.HasPrefix(arg, "--export=") {
			return true
		}
	}
	return false
}

func buildInteractive(spec JobSpec) Invocation {
	args := []string{"--job-name=" + spec.Name}
	if !spec.Memory.Default {
		args = append(args, "--mem="+spec.Memory.String())
	}
	if !spec.Time.Default() {
		args = append(args, "--time="+spec.Time.String())
	}
	args = append(args, spec.ExtraArgs...)
	command := spec.Command
	if command == "" {
		command = "srun --pty " + spec.Shell + " -l"
	}
	args = append(args, strings.Fields(command)...)
	return Invocation{Program: InteractiveProgram, Args: args}
}
