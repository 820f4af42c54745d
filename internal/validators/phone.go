package validators

import "strings"

const (
	minPhoneDigits = 8
	maxPhoneDigits = 15
)

// NormalizePhone strips formatting from a phone number, keeping a leading
// "+". It returns false when the result is not a plausible number.
func NormalizePhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", false
		}
	}

	out := b.String()
	digits := len(strings.TrimPrefix(out, "+"))
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return "", false
	}
	return out, true
}
