package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "", TruncateString("abcdef", 0))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
	assert.Equal(t, "abcdef", TruncateString("abcdef", 6))
	assert.Equal(t, "abc...", TruncateString("abcdefgh", 6))
}

func TestPadString(t *testing.T) {
	assert.Equal(t, "ab  ", PadString("ab", 4, "left"))
	assert.Equal(t, "  ab", PadString("ab", 4, "right"))
	assert.Equal(t, " ab ", PadString("ab", 4, "center"))
	assert.Equal(t, "abcd", PadString("abcd", 2, "left"))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 MiB", FormatBytes(3*512*1024))
	assert.Equal(t, "2.0 GiB", FormatBytes(2*1024*1024*1024))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(1, 3, 9))
	assert.Equal(t, 9, Clamp(12, 3, 9))
	assert.Equal(t, 5, Clamp(5, 3, 9))
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, 7, Max(2, 7))
}
