package validation

import (
	"strconv"
	"strings"
)

// Type labels shown in the entry preview pane.
const (
	TypeInteger = "integer"
	TypeFloat   = "float"
	TypeBool    = "boolean-like"
	TypeVector  = "vector"
	TypeEnum    = "enum"
	TypeText    = "text"
	TypeError   = "error"
)

// Choose picks a validator from the key name and the current value.
//
// The order matters and is load-bearing: vector shape first, then the
// last value token, then key-name heuristics. Values like
// "div(tauMC) Gauss linear" carry parentheses without being vectors,
// which is why the shape probe has to actually pass before we commit
// to vector semantics. Enum constraints reported by the engine are
// applied by the caller on top of this and win unconditionally.
func Choose(key, value string) (Validator, string) {
	if strings.Contains(value, "(") && strings.Contains(value, ")") {
		if VectorValues(value) == "" {
			return VectorValues, TypeVector
		}
	}

	tokens := strings.Fields(strings.ReplaceAll(value, ";", " "))
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if _, err := strconv.ParseInt(last, 10, 64); err == nil {
			if !strings.Contains(last, ".") && !strings.ContainsAny(last, "eE") {
				return AsInt, TypeInteger
			}
		}
		if _, err := strconv.ParseFloat(last, 64); err == nil {
			return AsFloat, TypeFloat
		}
	}

	return guessFromKey(key)
}

func guessFromKey(key string) (Validator, string) {
	words := keyWords(key)
	if matchesAny(words, "on", "off", "switch", "enable", "disable") {
		return BoolFlag, TypeBool
	}
	if matchesAny(words, "iter", "step", "n", "count") {
		return AsInt, TypeInteger
	}
	if matchesAny(words, "tol", "dt", "time", "coeff", "alpha", "beta") {
		return AsFloat, TypeFloat
	}
	return NonEmpty, TypeText
}

// keyWords splits a camelCase dotted key into lowercase words, so that
// heuristic tokens match word starts rather than arbitrary substrings
// ("on" must not fire inside "relaxationFactor").
func keyWords(key string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}
	for _, r := range key {
		switch {
		case r >= 'A' && r <= 'Z':
			flush()
			cur.WriteRune(r)
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}

func matchesAny(words []string, tokens ...string) bool {
	for _, w := range words {
		for _, tok := range tokens {
			if strings.HasPrefix(w, tok) {
				return true
			}
		}
	}
	return false
}
