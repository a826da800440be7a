package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	valid := []string{
		"9876543210",
		"+91 98765 43210",
		"09876543210",
		"91-9876543210",
		"(987) 654-3210",
	}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), p)
	}

	invalid := []string{
		"",
		"12345",
		"1234567890", // starts below 6
		"98765432101234",
		"abcdefghij",
	}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), p)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"9876543210":      "+919876543210",
		"+919876543210":   "+919876543210",
		"09876543210":     "+919876543210",
		"+91 98765 43210": "+919876543210",
		"not a number":    "not a number",
		"12345":           "12345",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", Sanitize("  <b>bold</b>  "))
	assert.Equal(t, "plain", Sanitize("plain"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("first.last+tag@sub.example.co.in"))
	assert.False(t, ValidEmail("user@"))
	assert.False(t, ValidEmail("user example.com"))
	assert.False(t, ValidEmail(""))
}
