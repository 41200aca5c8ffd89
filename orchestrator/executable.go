package orchestrator

// Execution is what one invocation of a backup executor produced: its
// termination status, the combined output of its standard streams, and a
// bounded excerpt of its error output.
type Execution struct {
	ExitCode      int
	Output        string
	StderrExcerpt string
}

// Executable is the backup executor contract. The algorithm behind it is
// opaque to the orchestrator; it receives the environment resolved by the
// prepare step. Execute returns an error only when the executor failed to
// launch at all; a non-zero exit is reported through Execution, not
// through the error.
type Executable interface {
	Execute(env Environment) (Execution, error)
}
