package orchestrator

// RunLogger appends one run's captured output to the run log, bracketed by
// a start marker and an end marker carrying the given exit code.
type RunLogger interface {
	Append(result RunResult, exitCode int) error
}
