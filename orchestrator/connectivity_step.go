package orchestrator

import (
	"net"
	"time"
)

type DialFunc func(network, address string, timeout time.Duration) (net.Conn, error)

// ConnectivityStep is a best-effort reachability probe against the
// notification-service host. It never fails the run: any probe error is
// logged as a warning and recorded in the result.
type ConnectivityStep struct {
	target  string
	timeout time.Duration
	dial    DialFunc
	logger  Logger
}

func NewConnectivityStep(target string, timeout time.Duration, dial DialFunc, logger Logger) Step {
	return &ConnectivityStep{
		target:  target,
		timeout: timeout,
		dial:    dial,
		logger:  logger,
	}
}

func (s *ConnectivityStep) Run(session *Session) error {
	if s.target == "" {
		s.logger.Debug("dbr", "No connectivity target configured, skipping probe")
		session.Result().ConnectivityOK = true
		return nil
	}

	conn, err := s.dial("tcp", s.target, s.timeout)
	if err != nil {
		s.logger.Warn("dbr", "Connectivity probe against %s failed: %s", s.target, err)
		session.Result().ConnectivityOK = false
		return nil
	}
	conn.Close()

	s.logger.Debug("dbr", "Connectivity probe against %s succeeded", s.target)
	session.Result().ConnectivityOK = true
	return nil
}
