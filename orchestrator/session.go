package orchestrator

type Session struct {
	runName     string
	environment Environment
	result      RunResult
	prepareErr  error
}

func NewSession(runName string) *Session {
	return &Session{runName: runName}
}

func (session *Session) RunName() string {
	return session.runName
}

func (session *Session) Environment() Environment {
	return session.environment
}

func (session *Session) SetEnvironment(environment Environment) {
	session.environment = environment
}

func (session *Session) Result() *RunResult {
	return &session.result
}

func (session *Session) PrepareError() error {
	return session.prepareErr
}

func (session *Session) SetPrepareError(err error) {
	session.prepareErr = err
}

// FinalExitCode is the process-level exit code for this run: the reserved
// pre-flight code when prepare failed, otherwise the executor's exit code
// with launch failures coarsened to a generic failure.
func (session *Session) FinalExitCode() int {
	if session.prepareErr != nil {
		return ExitCodePreFlightFailure
	}
	if session.result.ExitCode < 0 {
		return 1
	}
	return session.result.ExitCode
}
