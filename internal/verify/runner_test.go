package verify

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CKPEIIKA/of-tui/internal/foam"
)

// checkEngine answers CheckFile from a canned table, optionally
// blocking until released so tests can observe a run mid-flight.
type checkEngine struct {
	mu      sync.Mutex
	results map[string]foam.CheckResult
	errs    map[string]error
	checked []string
	gate    chan struct{}
}

func newCheckEngine() *checkEngine {
	return &checkEngine{
		results: map[string]foam.CheckResult{},
		errs:    map[string]error{},
	}
}

func (e *checkEngine) CheckFile(file foam.CaseFile) (foam.CheckResult, error) {
	if e.gate != nil {
		<-e.gate
	}
	e.mu.Lock()
	e.checked = append(e.checked, file.Rel)
	e.mu.Unlock()
	if err := e.errs[file.Rel]; err != nil {
		return foam.CheckResult{}, err
	}
	if r, ok := e.results[file.Rel]; ok {
		return r, nil
	}
	return foam.CheckResult{Checked: true}, nil
}

func (e *checkEngine) checkedFiles() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.checked...)
}

func (e *checkEngine) ReadEntry(foam.CaseFile, string) (string, error)    { return "", nil }
func (e *checkEngine) ListTopLevelKeys(foam.CaseFile) ([]string, error)   { return nil, nil }
func (e *checkEngine) ListSubKeys(foam.CaseFile, string) []string         { return nil }
func (e *checkEngine) ListEnumValues(foam.CaseFile, string) []string      { return nil }
func (e *checkEngine) Comments(foam.CaseFile, string) []string            { return nil }
func (e *checkEngine) InfoLines(foam.CaseFile, string) []string           { return nil }
func (e *checkEngine) WriteEntry(foam.CaseFile, string, string) error     { return nil }

func caseFiles(rels ...string) []foam.CaseFile {
	files := make([]foam.CaseFile, len(rels))
	for i, rel := range rels {
		files[i] = foam.CaseFile{Root: "/case", Rel: rel}
	}
	return files
}

func waitIdle(t *testing.T, r *Runner) {
	t.Helper()
	require.Eventually(t, func() bool { return !r.Running() },
		2*time.Second, time.Millisecond)
}

func TestRunCompletesAllFiles(t *testing.T) {
	engine := newCheckEngine()
	engine.results["0/U"] = foam.CheckResult{Checked: true, Errors: []string{"a", "b"}}
	engine.results["system/fvSchemes"] = foam.CheckResult{Checked: true, Warnings: []string{"w"}}

	files := caseFiles("0/U", "system/controlDict", "system/fvSchemes")
	r := NewRunner(engine)
	r.Start(files)
	waitIdle(t, r)

	done, total, running := r.Progress()
	assert.False(t, running)
	assert.Equal(t, 3, done)
	assert.Equal(t, 3, total)

	results := r.Snapshot()
	require.Len(t, results, 3)
	assert.Equal(t, "ERROR (2)", ResultLabel(results, files[0]))
	assert.Equal(t, "OK", ResultLabel(results, files[1]))
	assert.Equal(t, "Warn (1)", ResultLabel(results, files[2]))

	assert.Equal(t, []string{"0/U", "system/controlDict", "system/fvSchemes"}, engine.checkedFiles())
}

func TestPerFileErrorDoesNotAbort(t *testing.T) {
	engine := newCheckEngine()
	engine.errs["0/U"] = &foam.EngineError{Op: "check", File: "0/U", Err: errors.New("parse failed")}

	files := caseFiles("0/U", "system/controlDict")
	r := NewRunner(engine)
	r.Start(files)
	waitIdle(t, r)

	results := r.Snapshot()
	require.Len(t, results, 2)
	require.True(t, results[files[0]].Checked)
	require.Len(t, results[files[0]].Errors, 1)
	assert.Contains(t, results[files[0]].Errors[0], "parse failed")
	assert.Equal(t, "OK", ResultLabel(results, files[1]))
}

func TestProcessErrorAbortsWithPartialResults(t *testing.T) {
	engine := newCheckEngine()
	engine.errs["system/controlDict"] = &foam.ProcessError{Err: errors.New("fork failed")}

	files := caseFiles("0/U", "system/controlDict", "system/fvSchemes")
	r := NewRunner(engine)
	r.Start(files)
	waitIdle(t, r)

	results := r.Snapshot()
	assert.Len(t, results, 1)
	assert.Equal(t, "OK", ResultLabel(results, files[0]))
	assert.Equal(t, LabelNotChecked, ResultLabel(results, files[2]))

	done, _, _ := r.Progress()
	assert.Equal(t, 1, done)
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	engine := newCheckEngine()
	engine.gate = make(chan struct{})

	r := NewRunner(engine)
	r.Start(caseFiles("0/U", "system/controlDict"))
	require.Eventually(t, func() bool { return r.Running() },
		2*time.Second, time.Millisecond)

	r.Start(caseFiles("system/fvSchemes"))
	_, total, _ := r.Progress()
	assert.Equal(t, 2, total)

	close(engine.gate)
	waitIdle(t, r)

	_, total, _ = r.Progress()
	assert.Equal(t, 2, total)
	assert.Len(t, r.Snapshot(), 2)
}

func TestStatusLine(t *testing.T) {
	engine := newCheckEngine()
	engine.gate = make(chan struct{})

	r := NewRunner(engine)
	assert.Empty(t, r.StatusLine())

	r.Start(caseFiles("0/U"))
	line := r.StatusLine()
	assert.Contains(t, line, "check: 0/1")

	next := r.StatusLine()
	// Spinner advances per poll.
	assert.NotEqual(t, line[:1], next[:1])

	close(engine.gate)
	waitIdle(t, r)
	assert.Empty(t, r.StatusLine())
}

func TestResultLabelAbsent(t *testing.T) {
	file := foam.CaseFile{Root: "/case", Rel: "0/U"}
	assert.Equal(t, LabelNotChecked, ResultLabel(nil, file))
	assert.Equal(t, LabelNotChecked,
		ResultLabel(map[foam.CaseFile]foam.CheckResult{file: {}}, file))
}

func TestRerunAfterCompletion(t *testing.T) {
	engine := newCheckEngine()
	files := caseFiles("0/U")

	r := NewRunner(engine)
	r.Start(files)
	waitIdle(t, r)
	r.Start(files)
	waitIdle(t, r)

	done, total, _ := r.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, total)
	assert.Len(t, engine.checkedFiles(), 2)
}
