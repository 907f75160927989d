package validation

import (
	"os"
	"strconv"
	"strings"
	"unicode"
)

const MaxNameLength = 80

// NormalizePhone reduces a phone number to its national significant digits:
// punctuation is dropped, as are a 00 international prefix, a 90 country code
// on full-length numbers and the 0 trunk prefix.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	d := b.String()
	d = strings.TrimPrefix(d, "00")
	if len(d) == 12 && strings.HasPrefix(d, "90") {
		d = d[2:]
	}
	return strings.TrimLeft(d, "0")
}

func ValidatePhone(normalized string) bool {
	return len(normalized) >= 7 && len(normalized) <= 15
}

func PasswordMinLength() int {
	minStr := os.Getenv("PASSWORD_MIN_LENGTH")
	if minStr == "" {
		return 6
	}
	min, err := strconv.Atoi(minStr)
	if err != nil || min < 4 {
		return 6
	}
	return min
}

func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLength()
}

func NormalizeName(name string) string {
	return TrimAndLimit(name, MaxNameLength)
}

func TrimAndLimit(s string, max int) string {
	s = strings.TrimSpace(s)
	if max > 0 && len(s) > max {
		return strings.TrimSpace(truncateRunes(s, max))
	}
	return s
}

// truncateRunes cuts at a rune boundary at or before max bytes.
func truncateRunes(s string, max int) string {
	cut := 0
	for i := range s {
		if i > max {
			break
		}
		cut = i
	}
	if len(s) <= max {
		return s
	}
	return s[:cut]
}
