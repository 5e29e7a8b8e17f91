package util

import (
	"fmt"
	"regexp"
	"strings"
)

// moroccanPhoneRegex is the canonical local form required by the courier:
// a leading zero, a mobile/fixed prefix 5-7, then 8 digits.
var moroccanPhoneRegex = regexp.MustCompile(`^0[5-7]\d{8}$`)

// NormalizeMoroccanPhoneNumber converts the phone layouts customers actually type
// into the canonical 10-digit local form, e.g. "+212 612-345-678" -> "0612345678".
// Inputs that cannot be reduced to the canonical form return an error.
func NormalizeMoroccanPhoneNumber(phone string) (string, error) {
	digits := strings.TrimSpace(phone)
	for _, sep := range []string{" ", "-", ".", "(", ")"} {
		digits = strings.ReplaceAll(digits, sep, "")
	}
	digits = strings.TrimPrefix(digits, "+")

	for _, c := range digits {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("phone number %q contains non-digit characters", phone)
		}
	}

	// International form: drop the 212 country code, keep the subscriber number.
	if strings.HasPrefix(digits, "212") && len(digits) >= 11 {
		digits = digits[3:]
	}

	// Subscriber number missing its leading zero.
	if len(digits) == 9 {
		digits = "0" + digits
	}

	if !moroccanPhoneRegex.MatchString(digits) {
		return "", fmt.Errorf("phone number %q is not a valid Moroccan number", phone)
	}

	return digits, nil
}

// IsValidMoroccanPhoneNumber reports whether the input normalizes to a valid number.
func IsValidMoroccanPhoneNumber(phone string) bool {
	_, err := NormalizeMoroccanPhoneNumber(phone)
	return err == nil
}
