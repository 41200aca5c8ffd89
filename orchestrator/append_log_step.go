package orchestrator

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// AppendLogStep is the terminal step on every path through the workflow,
// including runs where prepare failed before the executor could start.
type AppendLogStep struct {
	runLogger RunLogger
	nowFunc   func() time.Time
	logger    Logger
}

func NewAppendLogStep(runLogger RunLogger, nowFunc func() time.Time, logger Logger) Step {
	return &AppendLogStep{
		runLogger: runLogger,
		nowFunc:   nowFunc,
		logger:    logger,
	}
}

func (s *AppendLogStep) Run(session *Session) error {
	result := *session.Result()
	if result.StartTime.IsZero() {
		result.StartTime = s.nowFunc()
	}
	if result.EndTime.IsZero() {
		result.EndTime = s.nowFunc()
	}

	if prepareErr := session.PrepareError(); prepareErr != nil && result.Output == "" {
		result.Output = fmt.Sprintf("pre-flight failed: %s\n", prepareErr)
	}

	if err := s.runLogger.Append(result, session.FinalExitCode()); err != nil {
		s.logger.Error("dbr", "Failed appending to run log for %s: %s", session.RunName(), err)
		return errors.Wrap(err, "failed appending to run log")
	}

	return nil
}
