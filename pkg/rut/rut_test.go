package rut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"12.345.678-5": "12345678-5",
		"12345678-5":   "12345678-5",
		"123456785":    "12345678-5",
		" 6-k ":        "6-K",
		"":             "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "input %q", input)
	}
}

func TestValid(t *testing.T) {
	valid := []string{"12.345.678-5", "12345678-5", "9-4", "6-K", "6-k"}
	for _, v := range valid {
		assert.True(t, Valid(v), "expected %q valid", v)
	}

	invalid := []string{"", "12.345.678-9", "9-5", "abc", "6-J", "K-1"}
	for _, v := range invalid {
		assert.False(t, Valid(v), "expected %q invalid", v)
	}
}
