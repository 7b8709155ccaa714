// Package rut normalizes and validates Chilean RUT identifiers.
package rut

import "strings"

// Normalize strips dots and separators and returns the canonical
// "cuerpo-DV" form in upper case. Input that cannot be normalized is
// returned trimmed and upper-cased so validation can reject it later.
func Normalize(value string) string {
	if value == "" {
		return value
	}

	str := strings.ToUpper(strings.TrimSpace(value))

	var clean strings.Builder
	for _, r := range str {
		if (r >= '0' && r <= '9') || r == 'K' {
			clean.WriteRune(r)
		}
	}
	raw := clean.String()
	if len(raw) < 2 {
		return str
	}

	body := raw[:len(raw)-1]
	dv := raw[len(raw)-1:]
	for _, r := range body {
		if r < '0' || r > '9' {
			return str
		}
	}
	return body + "-" + dv
}

// Valid reports whether the value carries a correct mod-11 check digit.
func Valid(value string) bool {
	if value == "" {
		return false
	}

	raw := strings.ToUpper(strings.TrimSpace(value))
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, "-", "")
	if len(raw) < 2 {
		return false
	}

	body := raw[:len(raw)-1]
	dv := raw[len(raw)-1:]
	for _, r := range body {
		if r < '0' || r > '9' {
			return false
		}
	}
	if dv != "K" && (dv[0] < '0' || dv[0] > '9') {
		return false
	}

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * factor
		if factor == 7 {
			factor = 2
		} else {
			factor++
		}
	}

	expected := 11 - sum%11
	var expectedDV string
	switch expected {
	case 11:
		expectedDV = "0"
	case 10:
		expectedDV = "K"
	default:
		expectedDV = string(rune('0' + expected))
	}
	return dv == expectedDV
}
