package checkout

import "strings"

// Input masks for the payment forms. Each helper is pure and runs on every
// field write, independent of validation. Feeding a helper its own output
// yields the same string again.

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups the card number into blocks of four digits,
// capped at 16 digits. Fewer than four digits stay ungrouped.
func FormatCardNumber(value string) string {
	v := digitsOnly(value)
	if len(v) < 4 {
		return v
	}
	if len(v) > 16 {
		v = v[:16]
	}
	parts := make([]string, 0, 4)
	for i := 0; i < len(v); i += 4 {
		end := i + 4
		if end > len(v) {
			end = len(v)
		}
		parts = append(parts, v[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry renders MM/YY, inserting the slash after the second digit and
// capping at four digits total.
func FormatExpiry(value string) string {
	v := digitsOnly(value)
	if len(v) < 2 {
		return v
	}
	if len(v) > 4 {
		v = v[:4]
	}
	return v[:2] + "/" + v[2:]
}

// FormatCVV strips non-digits and caps at four digits.
func FormatCVV(value string) string {
	v := digitsOnly(value)
	if len(v) > 4 {
		v = v[:4]
	}
	return v
}

// FormatCPF renders XXX.XXX.XXX-XX once exactly 11 digits are present;
// fewer (or more) digits stay unformatted.
func FormatCPF(value string) string {
	v := digitsOnly(value)
	if len(v) != 11 {
		return v
	}
	return v[:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:]
}

// FormatPhone renders (XX) XXXX-XXXX for 10 digits and (XX) XXXXX-XXXX for
// 11; any other length stays unformatted.
func FormatPhone(value string) string {
	v := digitsOnly(value)
	switch len(v) {
	case 10:
		return "(" + v[:2] + ") " + v[2:6] + "-" + v[6:]
	case 11:
		return "(" + v[:2] + ") " + v[2:7] + "-" + v[7:]
	default:
		return v
	}
}
