package core

import "strings"

const scriptTemplate = `$shebang$
#SBATCH --job-name=$name$
#SBATCH --mem=$memory$
#SBATCH --time=$time$
#SBATCH --error=$error$
#SBATCH --output=$output$
$set$

$cmd$
`

// RenderScript produces the batch submission script for spec. The
// command is inserted verbatim; it is expected to be copy-pasted from
// a working shell session. Directives whose value is the "use cluster
// default" sentinel are dropped entirely so the scheduler applies the
// partition limit instead of reading a literal zero.
func RenderScript(spec JobSpec) string {
	setLine := ""
	if spec.SetFlags != "" {
		setLine = "set -" + spec.SetFlags
	}
	script := strings.NewReplacer(
		"$shebang$", spec.Shebang,
		"$name$", spec.Name,
		"$memory$", spec.Memory.String(),
		"$time$", spec.Time.String(),
		"$error$", spec.ErrorPath,
		"$output$", spec.OutputPath,
		"$set$", setLine,
		"$cmd$", spec.Command,
	).Replace(scriptTemplate)

	if spec.Memory.Default {
		script = dropDirective(script, "--mem")
	}
	if spec.Time.Default() {
		script = dropDirective(script, "--time")
	}
	return script
}

func dropDirective(script, flag string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(script, "\n") {
		if strings.HasPrefix(line, "#SBATCH ") && strings.Contains(line, flag) {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}
