package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Recognized shells, most specific first so that "sh" only matches as
// a last resort.
var knownShells = []string{"zsh", "bash", "fish", "tcsh", "csh", "sh"}

// DetectShell works out which shell to hand to an interactive session.
// It prefers the shell that invoked us, then $SHELL, then the first
// common shell on PATH, and falls back to bash.
func DetectShell() string {
	if shell := shellFromParent(); shell != "" {
		return shell
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	for _, candidate := range []string{"zsh", "bash", "sh"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return "bash"
}

// shellFromParent inspects the parent process name via /proc. It
// returns "" when the parent is not a recognized shell or /proc is
// unavailable, as on non-Linux hosts.
func shellFromParent() string {
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", os.Getppid()))
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(string(comm))
	for _, shell := range knownShells {
		if strings.Contains(name, shell) {
			if path, err := exec.LookPath(shell); err == nil {
				return path
			}
			return shell
		}
	}
	return ""
}
