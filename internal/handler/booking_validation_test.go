package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhonePattern(t *testing.T) {
	valid := []string{
		"09012345678",
		"090-1234-5678",
		"03-1234-5678",
		"0120-00-0000",
		"1",
	}
	for _, p := range valid {
		assert.True(t, phonePattern.MatchString(p), "expected %q to be accepted", p)
	}

	invalid := []string{
		"",
		"090 1234 5678",
		"+819012345678",
		"(03)1234-5678",
		"phone",
		"090−1234−5678", // full-width minus sign
	}
	for _, p := range invalid {
		assert.False(t, phonePattern.MatchString(p), "expected %q to be rejected", p)
	}
}
