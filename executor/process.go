package executor

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/redberyltech/db-backup-runner/orchestrator"
)

const (
	maxExcerptLines = 20
	maxExcerptBytes = 4096
)

type Command struct {
	Name string
	Args []string
	Env  []string
	Dir  string
}

// ProcessExecutable runs one external command synchronously, capturing the
// combined output of both standard streams and a bounded tail of stderr.
// A non-zero exit is reported through the Execution; the returned error is
// reserved for the command failing to start at all.
type ProcessExecutable struct {
	command Command
}

func NewProcessExecutable(command Command) *ProcessExecutable {
	return &ProcessExecutable{command: command}
}

func (p *ProcessExecutable) Execute() (orchestrator.Execution, error) {
	cmd := exec.Command(p.command.Name, p.command.Args...)
	cmd.Dir = p.command.Dir
	if len(p.command.Env) > 0 {
		cmd.Env = append(os.Environ(), p.command.Env...)
	}

	// Stdout and Stderr are distinct writers, so os/exec copies the two
	// streams from separate goroutines; the shared combined buffer needs
	// its writes serialized.
	var combined, stderr bytes.Buffer
	combinedLocked := &lockedWriter{writer: &combined}
	cmd.Stdout = combinedLocked
	cmd.Stderr = io.MultiWriter(combinedLocked, &stderr)

	err := cmd.Run()

	execution := orchestrator.Execution{
		Output:        combined.String(),
		StderrExcerpt: tailExcerpt(stderr.String(), maxExcerptLines, maxExcerptBytes),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			execution.ExitCode = exitErr.ExitCode()
			return execution, nil
		}
		execution.ExitCode = -1
		return execution, err
	}

	return execution, nil
}

type lockedWriter struct {
	mutex  sync.Mutex
	writer io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.writer.Write(p)
}

// tailExcerpt keeps the last maxLines lines of s, capped at maxBytes.
func tailExcerpt(s string, maxLines, maxBytes int) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	excerpt := strings.Join(lines, "\n")
	if len(excerpt) > maxBytes {
		excerpt = excerpt[len(excerpt)-maxBytes:]
		// The byte cap can land mid-line; drop the partial leading line
		// unless it is all there is.
		if index := strings.IndexByte(excerpt, '\n'); index >= 0 {
			excerpt = excerpt[index+1:]
		}
	}
	return excerpt
}
