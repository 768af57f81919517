package foam

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const dictionaryTool = "foamDictionary"

// commandTimeout bounds a single foamDictionary call. Metadata queries
// are expected to be fast; a hung call must not freeze the UI forever.
const commandTimeout = 20 * time.Second

// DictEngine implements Engine by shelling out to foamDictionary.
// The dictionary file format is owned entirely by the external tool;
// this type only builds argument lists and splits output.
type DictEngine struct {
	log *RunLog
}

// NewDictEngine returns an engine for one case. Pass a nil log to
// disable tool logging.
func NewDictEngine(log *RunLog) *DictEngine {
	return &DictEngine{log: log}
}

// Available reports whether the foamDictionary binary can be found.
func (e *DictEngine) Available() bool {
	_, err := exec.LookPath(dictionaryTool)
	return err == nil
}

func (e *DictEngine) ReadEntry(file CaseFile, key string) (string, error) {
	out, stderr, err := e.run(file, "-entry", key, "-value", file.Rel)
	if err != nil {
		return "", &EngineError{Op: "read", File: file.Rel, Key: key, Err: wrapStderr(err, stderr)}
	}
	return strings.TrimRight(out, "\n"), nil
}

func (e *DictEngine) ListTopLevelKeys(file CaseFile) ([]string, error) {
	out, stderr, err := e.run(file, "-keywords", file.Rel)
	if err != nil {
		return nil, &EngineError{Op: "keywords", File: file.Rel, Err: wrapStderr(err, stderr)}
	}
	return splitLines(out), nil
}

func (e *DictEngine) ListSubKeys(file CaseFile, key string) []string {
	out, _, err := e.run(file, "-entry", key, "-keywords", file.Rel)
	if err != nil {
		// Scalar entries make foamDictionary complain; treat as no sub-keys.
		return nil
	}
	return splitLines(out)
}

func (e *DictEngine) ListEnumValues(file CaseFile, key string) []string {
	// foamDictionary reports the legal values for constrained entries
	// when asked to list; unconstrained entries yield nothing.
	out, _, err := e.run(file, "-entry", key, "-list", file.Rel)
	if err != nil {
		return nil
	}
	return strings.Fields(out)
}

func (e *DictEngine) WriteEntry(file CaseFile, key, value string) error {
	_, stderr, err := e.run(file, "-entry", key, "-set", value, file.Rel)
	if err != nil {
		return &EngineError{Op: "write", File: file.Rel, Key: key, Err: wrapStderr(err, stderr)}
	}
	return nil
}

// Comments returns the // comment lines directly above the entry.
// foamDictionary drops comments, so this reads the raw file instead.
func (e *DictEngine) Comments(file CaseFile, key string) []string {
	content, err := os.ReadFile(file.Path())
	if err != nil {
		return nil
	}
	leaf := key
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		leaf = key[idx+1:]
	}

	lines := strings.Split(string(content), "\n")
	var comments []string
	for i, raw := range lines {
		stripped := strings.TrimSpace(raw)
		if !strings.HasPrefix(stripped, leaf) {
			continue
		}
		rest := stripped[len(leaf):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != ';' && rest[0] != '{' {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			prev := strings.TrimSpace(lines[j])
			if !strings.HasPrefix(prev, "//") {
				break
			}
			text := strings.TrimSpace(strings.TrimPrefix(prev, "//"))
			comments = append([]string{text}, comments...)
		}
		break
	}
	return comments
}

// InfoLines returns free-form annotations for the entry; currently the
// defining line within the file, which the preview pane shows next to
// the value.
func (e *DictEngine) InfoLines(file CaseFile, key string) []string {
	content, err := os.ReadFile(file.Path())
	if err != nil {
		return nil
	}
	leaf := key
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		leaf = key[idx+1:]
	}
	for i, raw := range strings.Split(string(content), "\n") {
		stripped := strings.TrimSpace(raw)
		if stripped == leaf || strings.HasPrefix(stripped, leaf+" ") ||
			strings.HasPrefix(stripped, leaf+"\t") || strings.HasPrefix(stripped, leaf+"{") {
			return []string{fmt.Sprintf("Defined at %s:%d", file.Name(), i+1)}
		}
	}
	return nil
}

// run executes foamDictionary in the case directory and captures both
// output streams.
func (e *DictEngine) run(file CaseFile, args ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, dictionaryTool, args...)
	cmd.Dir = file.Root

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e.log != nil {
		e.log.Record(dictionaryTool, strings.Join(args, " "), stdout.String(), stderr.String(), err)
	}
	return stdout.String(), stderr.String(), err
}

func wrapStderr(err error, stderr string) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		return err
	}
	// Keep only the first stderr line; FOAM error banners run long.
	if idx := strings.IndexByte(msg, '\n'); idx > 0 {
		msg = msg[:idx]
	}
	return &toolError{err: err, detail: msg}
}

type toolError struct {
	err    error
	detail string
}

func (t *toolError) Error() string { return t.detail }

func (t *toolError) Unwrap() error { return t.err }

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
