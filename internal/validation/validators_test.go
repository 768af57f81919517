package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonEmpty(t *testing.T) {
	assert.Empty(t, NonEmpty("linear"))
	assert.Empty(t, NonEmpty("  x  "))
	assert.NotEmpty(t, NonEmpty(""))
	assert.NotEmpty(t, NonEmpty("   "))
}

func TestAsInt(t *testing.T) {
	assert.Empty(t, AsInt("42"))
	assert.Empty(t, AsInt(" 42; "))
	assert.Empty(t, AsInt("-7"))
	assert.NotEmpty(t, AsInt("4.2"))
	assert.NotEmpty(t, AsInt("1e3"))
	assert.NotEmpty(t, AsInt("abc"))
}

func TestAsFloat(t *testing.T) {
	assert.Empty(t, AsFloat("0.001"))
	assert.Empty(t, AsFloat("1e-6;"))
	assert.Empty(t, AsFloat("42"))
	assert.NotEmpty(t, AsFloat("Gauss"))
}

func TestBoolFlag(t *testing.T) {
	for _, v := range []string{"on", "Off", "TRUE", "false", "yes", "No", "0", "1", "on;"} {
		assert.Emptyf(t, BoolFlag(v), "value %q", v)
	}
	assert.NotEmpty(t, BoolFlag("maybe"))
	assert.NotEmpty(t, BoolFlag(""))
}

func TestVectorValues(t *testing.T) {
	assert.Empty(t, VectorValues("(1 2 3)"))
	assert.Empty(t, VectorValues("( 0 0 0 );"))
	assert.Empty(t, VectorValues("(1.5 -2e3 0.0)"))

	assert.NotEmpty(t, VectorValues("(1 2)"), "wrong arity")
	assert.NotEmpty(t, VectorValues("(1 2 3 4)"), "wrong arity")
	assert.NotEmpty(t, VectorValues("(1 a 3)"), "non-numeric token")
	assert.NotEmpty(t, VectorValues("1 2 3"), "no parentheses")
	assert.NotEmpty(t, VectorValues("div(tauMC) Gauss linear"))
}

func TestEnumOf(t *testing.T) {
	v := EnumOf([]string{"steadyState", "Euler", "backward"})
	assert.Empty(t, v("Euler"))
	assert.Empty(t, v("  backward; "))
	msg := v("CrankNicolson")
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "Euler")
	assert.Contains(t, msg, "backward")
}

func TestChooseVectorShapeWinsOverKey(t *testing.T) {
	// Any key: a parenthesized 3-number value is a vector.
	for _, key := range []string{"someList", "nIterations", "U"} {
		validator, label := Choose(key, "(1 2 3)")
		assert.Equal(t, TypeVector, label, "key %q", key)
		assert.Empty(t, validator("(1 2 3)"))
		assert.NotEmpty(t, validator("(1 2)"))
	}
}

func TestChooseLastTokenNumeric(t *testing.T) {
	tests := []struct {
		key, value, label string
	}{
		{"nIterations", "5", TypeInteger},
		{"anything", "uniform 300", TypeInteger},
		{"relaxationFactor", "0.7", TypeFloat},
		{"deltaT", "1e-5;", TypeFloat},
		{"tolerance", "1e-06", TypeFloat},
	}
	for _, tt := range tests {
		_, label := Choose(tt.key, tt.value)
		assert.Equalf(t, tt.label, label, "key=%q value=%q", tt.key, tt.value)
	}
}

func TestChooseKeyHeuristicFallback(t *testing.T) {
	tests := []struct {
		key, value, label string
	}{
		{"writeSwitch", "banana", TypeBool},
		{"turbulenceOn", "banana", TypeBool},
		{"nIterations", "many", TypeInteger},
		{"outerCount", "many", TypeInteger},
		{"tolerance", "tight", TypeFloat},
		{"timeScheme", "backward", TypeFloat},
		{"ddtSchemes", "...", TypeText},
	}
	for _, tt := range tests {
		_, label := Choose(tt.key, tt.value)
		assert.Equalf(t, tt.label, label, "key=%q value=%q", tt.key, tt.value)
	}
}

func TestChooseRelaxationFactorFallsToText(t *testing.T) {
	// "on" must not fire mid-word inside relaxationFactor.
	validator, label := Choose("relaxationFactor", "linear")
	assert.Equal(t, TypeText, label)
	assert.Empty(t, validator("linear"))
	assert.NotEmpty(t, validator("  "))
}

func TestChooseParenthesesWithoutVectorShape(t *testing.T) {
	// Scheme-like values keep their parentheses but are not vectors.
	_, label := Choose("divSchemes", "div(tauMC) Gauss linear")
	assert.NotEqual(t, TypeVector, label)
}
