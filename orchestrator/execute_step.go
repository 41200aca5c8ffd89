package orchestrator

import (
	"fmt"
	"time"
)

type ExecuteStep struct {
	executable Executable
	nowFunc    func() time.Time
	logger     Logger
}

func NewExecuteStep(executable Executable, nowFunc func() time.Time, logger Logger) Step {
	return &ExecuteStep{
		executable: executable,
		nowFunc:    nowFunc,
		logger:     logger,
	}
}

func (s *ExecuteStep) Run(session *Session) error {
	s.logger.Info("dbr", "Starting backup of %s...", session.RunName())

	result := session.Result()
	result.StartTime = s.nowFunc()
	execution, err := s.executable.Execute(session.Environment())
	result.EndTime = s.nowFunc()

	result.Output = execution.Output
	result.StderrExcerpt = execution.StderrExcerpt

	if err != nil {
		result.ExitCode = -1
		return NewExecutorFailure(-1, fmt.Sprintf("backup executor for %s failed to start: %s", session.RunName(), err))
	}

	result.ExitCode = execution.ExitCode
	if execution.ExitCode != 0 {
		return NewExecutorFailure(execution.ExitCode,
			fmt.Sprintf("backup of %s failed with exit code %d", session.RunName(), execution.ExitCode))
	}

	s.logger.Info("dbr", "Backup of %s finished", session.RunName())
	return nil
}
