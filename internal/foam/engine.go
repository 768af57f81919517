package foam

import "fmt"

// EngineError reports a failed foamDictionary interaction. It is always
// handled at the boundary: a single bad entry or file degrades to a
// placeholder or a recorded check failure, never a crash.
type EngineError struct {
	Op   string // "read", "write", "keywords", "check", ...
	File string
	Key  string
	Err  error
}

func (e *EngineError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("foam: %s %s entry %q: %v", e.Op, e.File, e.Key, e.Err)
	}
	return fmt.Sprintf("foam: %s %s: %v", e.Op, e.File, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// ProcessError reports a failure launching the check machinery itself,
// as opposed to a single file failing its check. It aborts a
// verification run.
type ProcessError struct {
	Err error
}

func (e *ProcessError) Error() string { return fmt.Sprintf("foam: check run: %v", e.Err) }

func (e *ProcessError) Unwrap() error { return e.Err }

// CheckResult is the terminal outcome of checking one case file.
// Once Checked is true the result is never mutated again within a run.
type CheckResult struct {
	Checked  bool
	Errors   []string
	Warnings []string
}

// Engine is the external dictionary collaborator. The real
// implementation shells out to foamDictionary; tests substitute fakes.
//
// ReadEntry and WriteEntry fail with *EngineError. The list-shaped
// operations return empty slices when the engine has nothing to say
// (including on engine failure): an empty sub-key list means scalar,
// an empty enum list means no constraint known.
type Engine interface {
	ReadEntry(file CaseFile, key string) (string, error)
	ListTopLevelKeys(file CaseFile) ([]string, error)
	ListSubKeys(file CaseFile, key string) []string
	ListEnumValues(file CaseFile, key string) []string
	Comments(file CaseFile, key string) []string
	InfoLines(file CaseFile, key string) []string
	WriteEntry(file CaseFile, key, value string) error
	CheckFile(file CaseFile) (CheckResult, error)
}
