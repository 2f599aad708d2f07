package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// nativeTimeRe covers the scheduler's own time grammar: bare minutes,
// M:S, H:M:S, D-H, D-H:M and D-H:M:S. Anything that matches is carried
// verbatim; in particular a bare integer stays bare so the scheduler
// keeps reading it as minutes.
var nativeTimeRe = regexp.MustCompile(`^(?:\d+-)?(?:\d+:)?(?:\d+:)?\d*$`)

var timeComponentRe = regexp.MustCompile(`^(\d+)\s*([A-Za-z]*)\s*`)

// TimeLimit is a job time limit: either a duration parsed from the
// compound grammar (e.g. 2h30m) or a string in the scheduler's native
// grammar carried through untouched.
type TimeLimit struct {
	verbatim string
	duration time.Duration
	parsed   bool
}

// String renders the limit the way sbatch wants it on the command
// line. Parsed durations come out as 0:S, M:S or H:M:S with days
// folded into the hour field.
func (t TimeLimit) String() string {
	if !t.parsed {
		return t.verbatim
	}
	return formatSchedulerTime(t.duration)
}

// Default reports whether the limit is the "use cluster default"
// sentinel.
func (t TimeLimit) Default() bool {
	return t.String() == "0"
}

// ParseTime parses a job time limit. The two grammars are disjoint:
// anything the scheduler itself would accept passes through verbatim,
// and only inputs containing unit letters go through the compound
// duration grammar. Units are w, d, h, m/min, s/sec and ms,
// case-insensitive; a trailing bare integer means seconds, so 5m3 is
// five minutes and three seconds.
func ParseTime(raw string) (TimeLimit, error) {
	trimmed := strings.TrimSpace(raw)
	if nativeTimeRe.MatchString(trimmed) {
		return TimeLimit{verbatim: trimmed}, nil
	}
	d, err := parseCompoundTime(trimmed)
	if err != nil {
		return TimeLimit{}, err
	}
	return TimeLimit{duration: d, parsed: true}, nil
}

func parseCompoundTime(input string) (time.Duration, error) {
	rest := input
	var total time.Duration
	for rest != "" {
		m := timeComponentRe.FindStringSubmatch(rest)
		if m == nil {
			return 0, &TimeParseError{Input: input, Reason: fmt.Sprintf("unexpected %q", rest)}
		}
		rest = rest[len(m[0]):]
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, &TimeParseError{Input: input, Reason: "number out of range"}
		}
		var unit time.Duration
		switch strings.ToLower(m[2]) {
		case "w":
			unit = 7 * 24 * time.Hour
		case "d":
			unit = 24 * time.Hour
		case "h":
			unit = time.Hour
		case "m", "min":
			unit = time.Minute
		case "s", "sec":
			unit = time.Second
		case "ms":
			unit = time.Millisecond
		case "":
			// a unitless integer is only allowed at the end, where it
			// means seconds
			if rest != "" {
				return 0, &TimeParseError{Input: input, Reason: fmt.Sprintf("missing unit before %q", rest)}
			}
			unit = time.Second
		default:
			return 0, &TimeParseError{Input: input, Reason: fmt.Sprintf("unknown unit %q", m[2])}
		}
		total += time.Duration(n) * unit
	}
	return total, nil
}

// formatSchedulerTime renders a duration in the shortest unambiguous
// scheduler form. Sub-second durations round up to one second so a
// nonzero request never collapses to the default sentinel.
func formatSchedulerTime(d time.Duration) string {
	if d == 0 {
		return "0"
	}
	secs := int64(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	if secs < 60 {
		return fmt.Sprintf("0:%d", secs)
	}
	mins := secs / 60
	secs %= 60
	if mins < 60 {
		return fmt.Sprintf("%d:%d", mins, secs)
	}
	hours := mins / 60
	mins %= 60
	return fmt.Sprintf("%d:%d:%d", hours, mins, secs)
}
