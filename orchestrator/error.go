package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// ExitCodePreFlightFailure is reserved for configuration and pre-flight
// failures, so a scheduler can tell them apart from executor failures.
const ExitCodePreFlightFailure = 2

type customError struct {
	error
}

type ConfigError customError
type NotifierFailure customError

type ExecutorFailure struct {
	error
	exitCode int
}

func NewConfigError(errorMessage string) ConfigError {
	return ConfigError{errors.New(errorMessage)}
}

func NewNotifierFailure(errorMessage string) NotifierFailure {
	return NotifierFailure{errors.New(errorMessage)}
}

func NewExecutorFailure(exitCode int, errorMessage string) ExecutorFailure {
	return ExecutorFailure{errors.New(errorMessage), exitCode}
}

func (err ExecutorFailure) ExitCode() int {
	return err.exitCode
}

type Error []error

func (err Error) Error() string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n%+v\n", index+1, err.Error())
	}
	return buffer.String()
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

func (err Error) ContainsConfigError() bool {
	for _, e := range err {
		if _, ok := e.(ConfigError); ok {
			return true
		}
	}
	return false
}

// IsNotifyOnly is true when every error in the aggregate came from the
// notifier; those are logged but never change the process exit code.
func (err Error) IsNotifyOnly() bool {
	if err.IsNil() {
		return false
	}
	for _, e := range err {
		if _, ok := e.(NotifierFailure); !ok {
			return false
		}
	}
	return true
}

// BuildExitCode maps an error aggregate to the process exit code:
// configuration failures win with the reserved pre-flight code, executor
// failures propagate the executor's own exit status, notifier failures
// are ignored, and anything else is a generic failure.
func BuildExitCode(errs Error) int {
	exitCode := 0

	for _, err := range errs {
		switch e := err.(type) {
		case ConfigError:
			return ExitCodePreFlightFailure
		case ExecutorFailure:
			if e.exitCode > 0 {
				exitCode = e.exitCode
			} else {
				exitCode = 1
			}
		case NotifierFailure:
			continue
		default:
			if exitCode == 0 {
				exitCode = 1
			}
		}
	}

	return exitCode
}

// ProcessError translates an error aggregate into an exit code and a
// printable message. Nothing propagates past the orchestrator boundary as
// an unhandled fault.
func ProcessError(errs Error) (int, string) {
	if errs.IsNil() {
		return 0, ""
	}
	exitCode := BuildExitCode(errs)
	if exitCode == 0 {
		return 0, ""
	}
	return exitCode, errs.Error()
}
