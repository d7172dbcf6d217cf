package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches Korean mobile numbers
	// Formats: 010-1234-5678 or 01012345678
	phoneRegex = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

	nonDigit = regexp.MustCompile(`[^0-9]`)
)

// ValidatePhone validates a Korean mobile phone number
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phoneRegex.MatchString(phone)
}

// NormalizePhone strips everything but digits: "010-1234-5678" -> "01012345678"
func NormalizePhone(phone string) string {
	return nonDigit.ReplaceAllString(phone, "")
}

// FormatPhone renders digits in the hyphenated form stored in the member table.
// Input that is not a mobile number is returned trimmed and unchanged.
func FormatPhone(phone string) string {
	digits := NormalizePhone(phone)
	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
	return strings.TrimSpace(phone)
}

// LastFour returns the last four digits of a phone number, or "" if it is shorter
func LastFour(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}
