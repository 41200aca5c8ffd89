package orchestrator

import "time"

// RunResult captures the outcome of a single backup attempt. Exactly one
// RunResult is produced per Runner invocation; it is owned by the session
// for the lifetime of the run and discarded once logged and notified.
type RunResult struct {
	StartTime      time.Time
	EndTime        time.Time
	ExitCode       int
	ConnectivityOK bool
	Output         string
	StderrExcerpt  string
}

// Environment is the resolved execution environment produced by the
// prepare step. Producing it has no side effects beyond path resolution.
type Environment struct {
	WorkingDirectory   string
	DependencySpecPath string
}
