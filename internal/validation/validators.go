package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Validator checks a proposed entry value and returns an advisory
// error message, or "" when the value is acceptable. Validators never
// block editing; callers decide what to do with the message.
type Validator func(value string) string

// NonEmpty rejects blank values.
func NonEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Value must not be empty."
	}
	return ""
}

// AsInt accepts base-10 integer literals, ignoring a trailing semicolon.
func AsInt(value string) string {
	text := stripSemicolons(value)
	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return fmt.Sprintf("%q is not an integer.", text)
	}
	return ""
}

// AsFloat accepts floating-point literals (integer literals included).
func AsFloat(value string) string {
	text := stripSemicolons(value)
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return fmt.Sprintf("%q is not a number.", text)
	}
	return ""
}

var boolWords = map[string]bool{
	"on": true, "off": true,
	"true": true, "false": true,
	"yes": true, "no": true,
	"0": true, "1": true,
}

// BoolFlag accepts the usual OpenFOAM switch spellings.
func BoolFlag(value string) string {
	text := strings.ToLower(stripSemicolons(value))
	if boolWords[text] {
		return ""
	}
	return "Value must be one of: on, off, true, false, yes, no, 0, 1."
}

// VectorValues accepts "( x y z )" with exactly three numeric
// components. It doubles as the shape probe Choose uses to decide
// whether a value is a vector at all.
func VectorValues(value string) string {
	text := strings.TrimSpace(value)
	text = strings.TrimSuffix(text, ";")
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
		return "Vector must be written as ( x y z )."
	}
	inner := strings.TrimSpace(text[1 : len(text)-1])
	tokens := strings.Fields(inner)
	if len(tokens) != 3 {
		return fmt.Sprintf("Vector needs exactly 3 components, got %d.", len(tokens))
	}
	for _, tok := range tokens {
		if _, err := strconv.ParseFloat(tok, 64); err != nil {
			return fmt.Sprintf("Vector component %q is not a number.", tok)
		}
	}
	return ""
}

// EnumOf builds a validator from the engine-reported set of legal
// values for a key. Membership is exact after trimming and dropping a
// trailing semicolon.
func EnumOf(allowed []string) Validator {
	set := make(map[string]bool, len(allowed))
	sorted := make([]string, 0, len(allowed))
	for _, v := range allowed {
		if !set[v] {
			sorted = append(sorted, v)
		}
		set[v] = true
	}
	sort.Strings(sorted)
	joined := strings.Join(sorted, ", ")

	return func(value string) string {
		if set[stripSemicolons(value)] {
			return ""
		}
		return fmt.Sprintf("Value must be one of: %s.", joined)
	}
}

func stripSemicolons(value string) string {
	text := strings.TrimSpace(value)
	text = strings.TrimSuffix(text, ";")
	return strings.TrimSpace(text)
}
