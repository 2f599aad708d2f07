package core

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Unit multipliers are decimal (1000-based), matching how sbatch and
// scontrol report sizes for the K/M/G/T suffixes.
const (
	bytesPerKB = 1000
	bytesPerMB = 1000 * 1000
)

var memoryRe = regexp.MustCompile(`^([0-9]+)(?:\.([0-9]+))?\s*([A-Za-z]*)$`)

var unitBytes = map[string]uint64{
	"b":  1,
	"k":  1000,
	"kb": 1000,
	"":   1000 * 1000,
	"m":  1000 * 1000,
	"mb": 1000 * 1000,
	"g":  1000 * 1000 * 1000,
	"gb": 1000 * 1000 * 1000,
	"t":  1000 * 1000 * 1000 * 1000,
	"tb": 1000 * 1000 * 1000 * 1000,
}

// Memory is a normalized --mem request. A value with Default set
// renders as "0", which tells the scheduler to apply the partition's
// default memory limit.
type Memory struct {
	Amount  uint64
	Unit    string // "K" or "M"
	Default bool
}

func (m Memory) String() string {
	if m.Default {
		return "0"
	}
	return fmt.Sprintf("%d%s", m.Amount, m.Unit)
}

// ParseMemory normalizes requests such as "4.3kb", "7G" or "9000" into
// the kilobyte/megabyte form sbatch expects. A bare number is read as
// megabytes, the sbatch default. Values below one megabyte stay in
// kilobytes; everything else is expressed in megabytes. Fractions are
// always rounded up so the job is never under-provisioned. A magnitude
// of zero, whatever its unit, means "use the cluster default".
func ParseMemory(raw string) (Memory, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Memory{}, &MemoryParseError{Input: raw, Reason: "empty input"}
	}
	m := memoryRe.FindStringSubmatch(trimmed)
	if m == nil {
		return Memory{}, &MemoryParseError{Input: raw, Reason: "malformed number"}
	}
	whole, frac, unit := m[1], m[2], strings.ToLower(m[3])

	mult, ok := unitBytes[unit]
	if !ok {
		return Memory{}, &MemoryParseError{Input: raw, Reason: fmt.Sprintf("unknown unit %q", m[3])}
	}

	// The value is kept as an exact rational, numer/denom bytes, so
	// that inputs like 0.56M do not pick up float rounding noise.
	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		return Memory{Default: true}, nil
	}
	mantissa, err := parseMantissa(digits)
	if err != nil {
		return Memory{}, &MemoryParseError{Input: raw, Reason: "value out of range"}
	}
	if mantissa > math.MaxUint64/mult {
		return Memory{}, &MemoryParseError{Input: raw, Reason: "value out of range"}
	}
	numer := mantissa * mult
	denom := pow10(len(frac))
	if denom == 0 || denom > math.MaxUint64/bytesPerMB {
		return Memory{}, &MemoryParseError{Input: raw, Reason: "value out of range"}
	}

	if numer < denom*bytesPerMB {
		return Memory{Amount: ceilDiv(numer, denom*bytesPerKB), Unit: "K"}, nil
	}
	return Memory{Amount: ceilDiv(numer, denom*bytesPerMB), Unit: "M"}, nil
}

func parseMantissa(digits string) (uint64, error) {
	var n uint64
	for _, c := range digits {
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("overflow")
		}
		n = n*10 + d
	}
	return n, nil
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		if p > math.MaxUint64/10 {
			return 0
		}
		p *= 10
	}
	return p
}

func ceilDiv(a, b uint64) uint64 {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
