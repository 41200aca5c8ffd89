package runlog

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/redberyltech/db-backup-runner/orchestrator"
)

// Appender writes one run's entry to the append-only run log: a start
// marker, the captured executor output, and an end marker with the exit
// code. The file handle is scoped to a single Append call, opened in
// append mode and closed on every path.
type Appender struct {
	path string
}

func NewAppender(path string) Appender {
	return Appender{path: path}
}

func (a Appender) Append(result orchestrator.RunResult, exitCode int) error {
	file, err := os.OpenFile(a.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed opening run log %s", a.path)
	}

	// A single write keeps entries contiguous when runs append in parallel.
	_, writeErr := file.Write(formatEntry(result, exitCode))
	closeErr := file.Close()

	if writeErr != nil {
		return errors.Wrapf(writeErr, "failed writing run log %s", a.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "failed closing run log %s", a.path)
	}
	return nil
}

func formatEntry(result orchestrator.RunResult, exitCode int) []byte {
	buffer := new(bytes.Buffer)

	fmt.Fprintf(buffer, "===== run started %s =====\n", result.StartTime.UTC().Format(time.RFC3339))
	if result.Output != "" {
		buffer.WriteString(result.Output)
		if !strings.HasSuffix(result.Output, "\n") {
			buffer.WriteByte('\n')
		}
	}
	fmt.Fprintf(buffer, "===== run finished %s exit %d =====\n", result.EndTime.UTC().Format(time.RFC3339), exitCode)

	return buffer.Bytes()
}
