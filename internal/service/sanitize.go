package service

import (
	"regexp"
	"strings"
)

// Field length caps applied after control-character stripping.
const (
	maxNameLen       = 100
	maxPhoneLen      = 30
	maxEmailLen      = 120
	maxAddressLen    = 300
	maxCityLen       = 80
	maxPostalCodeLen = 12
	maxNotesLen      = 500

	maxQueryLen    = 100
	maxCategoryLen = 50
	maxSortLen     = 30
	maxMethodLen   = 20
)

// Permissive single-@ check, not full RFC validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// sanitizeText trims, strips ASCII control characters (0x00–0x1F and 0x7F)
// and truncates to maxLen runes. Sanitation only, not a security boundary.
func sanitizeText(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if strings.ContainsFunc(s, isControl) {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if isControl(r) {
				continue
			}
			b.WriteRune(r)
		}
		s = b.String()
	}
	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return s
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}

// isValidEmail accepts the empty string; email is optional.
func isValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}
