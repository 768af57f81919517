// Package verify runs the case-wide check sweep on a background
// worker and publishes incremental progress for the UI to poll.
package verify

import (
	"errors"
	"fmt"
	"sync"

	"github.com/CKPEIIKA/of-tui/internal/foam"
)

var spinnerGlyphs = []string{"|", "/", "-", "\\"}

// LabelNotChecked is shown for files a run has not reached.
const LabelNotChecked = "Not checked"

// Runner owns one verification sweep at a time. The worker goroutine
// is the only writer of the run state; the UI thread reads it through
// StatusLine and Snapshot. One mutex covers the whole field group so
// every read observes a consistent run.
type Runner struct {
	engine foam.Engine

	mu         sync.Mutex
	inProgress bool
	total      int
	done       int
	current    foam.CaseFile
	results    map[foam.CaseFile]foam.CheckResult

	spin int
}

// NewRunner returns an idle runner bound to an engine.
func NewRunner(engine foam.Engine) *Runner {
	return &Runner{engine: engine}
}

// Start launches a sweep over the given files in order. Starting while
// a sweep is already running is a no-op. The worker is abandoned on
// session exit; nothing persists across runs.
func (r *Runner) Start(files []foam.CaseFile) {
	r.mu.Lock()
	if r.inProgress {
		r.mu.Unlock()
		return
	}
	snapshot := make([]foam.CaseFile, len(files))
	copy(snapshot, files)
	r.inProgress = true
	r.total = len(snapshot)
	r.done = 0
	r.current = foam.CaseFile{}
	r.results = make(map[foam.CaseFile]foam.CheckResult, len(snapshot))
	r.mu.Unlock()

	go r.sweep(snapshot)
}

func (r *Runner) sweep(files []foam.CaseFile) {
	defer func() {
		r.mu.Lock()
		r.inProgress = false
		r.mu.Unlock()
	}()

	for _, file := range files {
		result, err := r.engine.CheckFile(file)
		if err != nil {
			var procErr *foam.ProcessError
			if errors.As(err, &procErr) {
				// The check machinery itself is broken; later
				// files keep no result at all.
				return
			}
			result = foam.CheckResult{Checked: true, Errors: []string{err.Error()}}
		}

		r.mu.Lock()
		r.results[file] = result
		r.done++
		r.current = file
		r.mu.Unlock()
	}
}

// Running reports whether a sweep is in progress.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inProgress
}

// StatusLine renders the progress line for the status bar, advancing
// the spinner one glyph per call. It is empty while no sweep runs.
func (r *Runner) StatusLine() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.inProgress {
		return ""
	}
	glyph := spinnerGlyphs[r.spin%len(spinnerGlyphs)]
	r.spin++
	name := ""
	if r.current.Rel != "" {
		name = r.current.Name()
	}
	return fmt.Sprintf("%s check: %d/%d %s", glyph, r.done, r.total, name)
}

// Progress returns the consistent (done, total, running) triple.
func (r *Runner) Progress() (done, total int, running bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done, r.total, r.inProgress
}

// Snapshot copies the result map so the caller can render it without
// holding the lock.
func (r *Runner) Snapshot() map[foam.CaseFile]foam.CheckResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[foam.CaseFile]foam.CheckResult, len(r.results))
	for file, result := range r.results {
		out[file] = result
	}
	return out
}

// ResultLabel classifies one file's outcome for the results table.
func ResultLabel(results map[foam.CaseFile]foam.CheckResult, file foam.CaseFile) string {
	result, ok := results[file]
	switch {
	case !ok || !result.Checked:
		return LabelNotChecked
	case len(result.Errors) > 0:
		return fmt.Sprintf("ERROR (%d)", len(result.Errors))
	case len(result.Warnings) > 0:
		return fmt.Sprintf("Warn (%d)", len(result.Warnings))
	default:
		return "OK"
	}
}
