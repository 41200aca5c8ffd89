package orchestrator

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notifier delivers run outcome alerts. Failures to deliver are non-fatal
// to the orchestrator.
type Notifier interface {
	Notify(subject, body string, severity Severity) error
}
