package foam

import (
	"fmt"
	"os"
	"strings"
)

// CheckFile verifies one dictionary file. With foamDictionary present
// the file is parsed by the tool and FOAM error/warning banners are
// folded into the result; otherwise the lexical lint below stands in,
// so the check screen keeps working in no-foam mode.
//
// A file that fails its check still produces a terminal result; the
// returned error is non-nil only when the file could not be examined
// at all.
func (e *DictEngine) CheckFile(file CaseFile) (CheckResult, error) {
	if !e.Available() {
		return e.lintFile(file)
	}

	_, stderr, err := e.run(file, "-keywords", file.Rel)
	result := CheckResult{Checked: true}
	if err != nil {
		msgs := foamBannerLines(stderr)
		if len(msgs) == 0 {
			msgs = []string{fmt.Sprintf("%s failed: %v", dictionaryTool, err)}
		}
		result.Errors = msgs
		return result, nil
	}
	result.Warnings = foamBannerLines(stderr)
	return result, nil
}

func (e *DictEngine) lintFile(file CaseFile) (CheckResult, error) {
	content, err := os.ReadFile(file.Path())
	if err != nil {
		return CheckResult{}, &EngineError{Op: "check", File: file.Rel, Err: err}
	}
	return CheckResult{Checked: true, Warnings: FindSuspiciousLines(string(content))}, nil
}

// foamBannerLines extracts the first line of each FOAM warning or
// error banner from tool stderr.
func foamBannerLines(stderr string) []string {
	var msgs []string
	lines := strings.Split(stderr, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "--> FOAM") && !strings.HasPrefix(trimmed, "FOAM") {
			continue
		}
		msg := trimmed
		// The banner text usually sits on the following line.
		for j := i + 1; j < len(lines) && j <= i+3; j++ {
			next := strings.TrimSpace(lines[j])
			if next != "" && !strings.HasPrefix(next, "-") {
				msg = msg + ": " + next
				break
			}
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// FindSuspiciousLines runs a cheap lexical scan over dictionary text:
// unmatched braces and entry lines that look like they dropped their
// trailing semicolon. It understands // and /* */ comments and skips
// the FoamFile header banner. Purely advisory; the real parse belongs
// to foamDictionary.
func FindSuspiciousLines(content string) []string {
	var warnings []string
	braceDepth := 0
	headerDone := false
	inBlockComment := false

	lines := strings.Split(content, "\n")

	nextSignificant := func(idx int) string {
		for j := idx + 1; j < len(lines); j++ {
			candidate := strings.TrimSpace(lines[j])
			if candidate == "" ||
				strings.HasPrefix(candidate, "//") ||
				strings.HasPrefix(candidate, "/*") ||
				strings.HasPrefix(candidate, "*") {
				continue
			}
			return candidate
		}
		return ""
	}

	for i, raw := range lines {
		lineNo := i + 1
		stripped := strings.TrimSpace(raw)

		if !headerDone {
			if stripped == "" ||
				strings.HasPrefix(stripped, "/*") ||
				strings.HasPrefix(stripped, "*") ||
				strings.HasPrefix(stripped, "|") ||
				strings.HasPrefix(stripped, "\\") ||
				strings.HasPrefix(stripped, "//") {
				continue
			}
			headerDone = true
			if strings.Contains(strings.ToLower(stripped), "foamfile") {
				continue
			}
		}

		line, nowInBlock := stripBlockComments(raw, inBlockComment)
		inBlockComment = nowInBlock
		if inBlockComment {
			continue
		}
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}

		strippedLine := strings.TrimSpace(line)
		if strippedLine == "" {
			continue
		}

		for _, ch := range line {
			switch ch {
			case '{':
				braceDepth++
			case '}':
				braceDepth--
				if braceDepth < 0 {
					warnings = append(warnings, fmt.Sprintf("Line %d: unexpected '}'.", lineNo))
					braceDepth = 0
				}
			}
		}

		if strings.HasPrefix(strippedLine, "#include") || strings.HasPrefix(strippedLine, "#ifdef") {
			continue
		}
		if strings.Contains(line, "{") && strings.Contains(line, "}") {
			continue
		}
		switch strippedLine[len(strippedLine)-1] {
		case ';', '{', '}', '(', ')':
			continue
		}
		if nextSignificant(i) == "{" {
			continue
		}

		snippet := strippedLine
		if len(snippet) > 60 {
			snippet = snippet[:60]
		}
		warnings = append(warnings, fmt.Sprintf("Line %d: missing ';'? -> %s", lineNo, snippet))
	}

	if braceDepth > 0 {
		warnings = append(warnings, "File ends with unmatched '{'.")
	}
	return warnings
}

// stripBlockComments removes /* */ spans from one line, carrying the
// open-comment state across lines.
func stripBlockComments(line string, inBlock bool) (string, bool) {
	var cleaned strings.Builder
	remainder := line
	for remainder != "" {
		if inBlock {
			end := strings.Index(remainder, "*/")
			if end == -1 {
				return cleaned.String(), true
			}
			remainder = remainder[end+2:]
			inBlock = false
			continue
		}
		start := strings.Index(remainder, "/*")
		if start == -1 {
			cleaned.WriteString(remainder)
			break
		}
		cleaned.WriteString(remainder[:start])
		remainder = remainder[start+2:]
		end := strings.Index(remainder, "*/")
		if end == -1 {
			return cleaned.String(), true
		}
		remainder = remainder[end+2:]
	}
	return cleaned.String(), inBlock
}
