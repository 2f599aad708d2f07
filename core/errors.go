package core

import "fmt"

// MemoryParseError reports a memory request that could not be understood.
type MemoryParseError struct {
	Input  string
	Reason string
}

func (e *MemoryParseError) Error() string {
	return fmt.Sprintf("%q is not a valid memory size: %s", e.Input, e.Reason)
}

// TimeParseError reports a time limit that matched neither the
// scheduler's native grammar nor the compound duration grammar.
type TimeParseError struct {
	Input  string
	Reason string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("%q is not a valid time: %s", e.Input, e.Reason)
}

// InvalidJobSpecError reports a job request that is structurally
// unsubmittable, such as a batch job with no command.
type InvalidJobSpecError struct {
	Reason string
}

func (e *InvalidJobSpecError) Error() string {
	return e.Reason
}
