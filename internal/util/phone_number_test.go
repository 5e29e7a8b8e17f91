package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMoroccanPhoneNumber(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical local form", input: "0612345678", want: "0612345678"},
		{name: "international with country code", input: "212612345678", want: "0612345678"},
		{name: "international with plus", input: "+212612345678", want: "0612345678"},
		{name: "international keeping the leading zero", input: "2120612345678", want: "0612345678"},
		{name: "missing leading zero", input: "612345678", want: "0612345678"},
		{name: "spaces and dashes", input: "06 12-34-56-78", want: "0612345678"},
		{name: "fixed line", input: "0522987654", want: "0522987654"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeMoroccanPhoneNumber(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeMoroccanPhoneNumberIsIdempotent(t *testing.T) {
	first, err := NormalizeMoroccanPhoneNumber("212612345678")
	require.NoError(t, err)

	second, err := NormalizeMoroccanPhoneNumber(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeMoroccanPhoneNumberRejectsInvalidInput(t *testing.T) {
	invalid := []string{
		"",
		"abc",
		"06123",
		"0812345678",  // 08 is not a valid prefix
		"06123456789", // too long
		"06-12-34-5x-78",
		"21261234567", // 212 + 8 digits: subscriber number is one digit short
	}

	for _, input := range invalid {
		_, err := NormalizeMoroccanPhoneNumber(input)
		assert.Error(t, err, "input %q should not normalize", input)
		assert.False(t, IsValidMoroccanPhoneNumber(input))
	}
}
