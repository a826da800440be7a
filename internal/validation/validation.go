package validation

import (
	"html"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigit     = regexp.MustCompile(`\D`)
	phoneJunk    = regexp.MustCompile(`[\s\-()]`)
)

// Sanitize trims and HTML-escapes free-form user input.
func Sanitize(text string) string {
	return html.EscapeString(strings.TrimSpace(text))
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone accepts Indian mobile numbers: 10 digits starting 6-9, with an
// optional +91 country code or 0 trunk prefix.
func ValidPhone(phone string) bool {
	digits := nonDigit.ReplaceAllString(phone, "")
	if digits == "" {
		return false
	}
	if strings.HasPrefix(digits, "91") && len(digits) == 12 {
		digits = digits[2:]
	} else if strings.HasPrefix(digits, "0") && len(digits) == 11 {
		digits = digits[1:]
	}
	return len(digits) == 10 && digits[0] >= '6' && digits[0] <= '9'
}

// SanitizePhone strips spaces, dashes and parentheses.
func SanitizePhone(phone string) string {
	return phoneJunk.ReplaceAllString(phone, "")
}

// NormalizePhone converts a valid Indian mobile number to E.164
// (+91XXXXXXXXXX). Input that cannot be normalized is returned unchanged.
func NormalizePhone(phone string) string {
	digits := nonDigit.ReplaceAllString(phone, "")
	var local string
	switch {
	case strings.HasPrefix(digits, "91") && len(digits) == 12:
		local = digits[2:]
	case strings.HasPrefix(digits, "0") && len(digits) == 11:
		local = digits[1:]
	case len(digits) == 10:
		local = digits
	default:
		return phone
	}
	if local[0] >= '6' && local[0] <= '9' {
		return "+91" + local
	}
	return phone
}
