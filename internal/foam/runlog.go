package foam

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RunLog appends external tool output to log.<tool> files in the case
// directory, so a session leaves the same audit trail the solvers do.
// Safe for concurrent use; the verification worker and the UI thread
// both record through it.
type RunLog struct {
	mu   sync.Mutex
	root string
}

// NewRunLog returns a log writing into the given case directory.
func NewRunLog(root string) *RunLog {
	return &RunLog{root: root}
}

// Record appends one invocation. Empty output is not worth a file;
// write failures are swallowed, logging must never take the session
// down.
func (l *RunLog) Record(tool, args, stdout, stderr string, runErr error) {
	if l == nil {
		return
	}
	if stdout == "" && stderr == "" && runErr == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "==== %s %s ====\n", time.Now().Format("2006-01-02 15:04:05"), args)
	if runErr != nil {
		fmt.Fprintf(&b, "status: %v\n", runErr)
	}
	if stdout != "" {
		b.WriteString("stdout:\n")
		b.WriteString(stdout)
		if !strings.HasSuffix(stdout, "\n") {
			b.WriteByte('\n')
		}
	}
	if stderr != "" {
		b.WriteString("stderr:\n")
		b.WriteString(stderr)
		if !strings.HasSuffix(stderr, "\n") {
			b.WriteByte('\n')
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	path := filepath.Join(l.root, "log."+tool)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(b.String())
}
