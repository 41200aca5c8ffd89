package orchestrator

import "fmt"

// NotifyStep runs unconditionally after the execute step, and also on the
// pre-flight failure path. Notifier failures are logged and recorded but
// never change the process exit code; the run has already completed.
type NotifyStep struct {
	notifier        Notifier
	notifyOnFailure bool
	notifyOnSuccess bool
	logger          Logger
}

func NewNotifyStep(notifier Notifier, notifyOnFailure, notifyOnSuccess bool, logger Logger) Step {
	return &NotifyStep{
		notifier:        notifier,
		notifyOnFailure: notifyOnFailure,
		notifyOnSuccess: notifyOnSuccess,
		logger:          logger,
	}
}

func (s *NotifyStep) Run(session *Session) error {
	subject, body, severity, wanted := s.message(session)
	if !wanted {
		return nil
	}

	if err := s.notifier.Notify(subject, body, severity); err != nil {
		s.logger.Error("dbr", "Failed to deliver notification for %s: %s", session.RunName(), err)
		return NewNotifierFailure(fmt.Sprintf("failed to deliver notification for %s: %s", session.RunName(), err))
	}

	return nil
}

func (s *NotifyStep) message(session *Session) (string, string, Severity, bool) {
	if prepareErr := session.PrepareError(); prepareErr != nil {
		if !s.notifyOnFailure {
			return "", "", SeverityError, false
		}
		subject := fmt.Sprintf("Backup Failed: %s", session.RunName())
		body := fmt.Sprintf("Pre-flight checks failed, no backup was attempted.\n\n%s", prepareErr)
		return subject, body, SeverityError, true
	}

	result := session.Result()
	if result.ExitCode != 0 {
		if !s.notifyOnFailure {
			return "", "", SeverityError, false
		}
		subject := fmt.Sprintf("Backup Failed: %s", session.RunName())
		body := fmt.Sprintf("Backup for %s failed with exit code %d.\n\n%s",
			session.RunName(), result.ExitCode, result.StderrExcerpt)
		return subject, body, SeverityError, true
	}

	if !s.notifyOnSuccess {
		return "", "", SeverityInfo, false
	}
	subject := fmt.Sprintf("Backup Success: %s", session.RunName())
	body := fmt.Sprintf("Backup for %s completed successfully in %s.",
		session.RunName(), result.EndTime.Sub(result.StartTime))
	return subject, body, SeverityInfo, true
}
