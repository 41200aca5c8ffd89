package notifier

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"github.com/redberyltech/db-backup-runner/config"
	"github.com/redberyltech/db-backup-runner/orchestrator"
)

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier delivers run outcome emails over SMTP with STARTTLS. An
// incompletely configured notifier is a logged no-op, so a run without
// email settings still completes normally.
type SMTPNotifier struct {
	conf   config.SMTPConfig
	logger orchestrator.Logger
	send   sendFunc
}

func NewSMTPNotifier(conf config.SMTPConfig, logger orchestrator.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		conf:   conf,
		logger: logger,
		send:   smtp.SendMail,
	}
}

func (n *SMTPNotifier) Notify(subject, body string, severity orchestrator.Severity) error {
	if missing := n.missingSettings(); len(missing) > 0 {
		n.logger.Warn("dbr", "Email notifier is not fully configured (missing %s), skipping notification",
			strings.Join(missing, ", "))
		return nil
	}

	addr := fmt.Sprintf("%s:%d", n.conf.Host, n.conf.Port)
	auth := smtp.PlainAuth("", n.conf.Username, n.conf.AppPassword, n.conf.Host)
	message := buildMessage(n.conf.From, n.conf.Recipients, subject, body, severity)

	if err := n.send(addr, auth, n.conf.From, n.conf.Recipients, message); err != nil {
		return errors.Wrapf(err, "failed sending notification via %s", addr)
	}

	n.logger.Info("dbr", "Notification sent to %s", strings.Join(n.conf.Recipients, ", "))
	return nil
}

func (n *SMTPNotifier) missingSettings() []string {
	var missing []string
	if n.conf.Host == "" {
		missing = append(missing, "smtp_host")
	}
	if n.conf.Username == "" {
		missing = append(missing, "username")
	}
	if n.conf.AppPassword == "" {
		missing = append(missing, "app_password")
	}
	if n.conf.From == "" {
		missing = append(missing, "sender_email")
	}
	if len(n.conf.Recipients) == 0 {
		missing = append(missing, "recipient_emails")
	}
	return missing
}

func buildMessage(from string, recipients []string, subject, body string, severity orchestrator.Severity) []byte {
	headers := []string{
		"From: " + from,
		"To: " + strings.Join(recipients, ", "),
		"Subject: [Backup Service] " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody(body, severity))
}

func htmlBody(body string, severity orchestrator.Severity) string {
	heading := `<h2 style="color: #388e3c;">Backup Completed Successfully</h2>`
	if severity == orchestrator.SeverityError {
		heading = `<h2 style="color: #d32f2f;">Backup Failed</h2>`
	}

	paragraphs := strings.ReplaceAll(escape(body), "\n", "<br>")

	return "<html><body>" + heading +
		"<p>" + paragraphs + "</p>" +
		"<hr><p><small>This is an automated message from the Backup Service.</small></p>" +
		"</body></html>"
}

func escape(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}
