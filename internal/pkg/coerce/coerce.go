// Package coerce turns loosely typed JSON request values into text and integers.
//
// Clients of this API send numbers as strings, strings as numbers and sometimes omit fields
// entirely. The rules are lenient:
//
//   - Text renders any JSON value as text. An absent field renders as "undefined", null as "null",
//     lists are joined with "," and objects render as "[object Object]".
//   - Int parses the leading integer of the value's text form ("12 seats" is 12, "0x1f" is 31).
//     A value with no leading digits is not a number.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Undefined is the text form of an absent field.
const Undefined = "undefined"

// Present reports whether the field was sent at all (null counts as sent).
func Present(raw json.RawMessage) bool {
	return len(raw) > 0
}

// String returns the value only when it was sent as a JSON string.
func String(raw json.RawMessage) (string, bool) {
	v, ok := decode(raw)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Text renders raw as text.
func Text(raw json.RawMessage) string {
	v, ok := decode(raw)
	if !ok {
		return Undefined
	}
	return textOf(v)
}

// Int parses the leading integer of raw's text form. ok is false when raw is not a number.
func Int(raw json.RawMessage) (n int64, ok bool) {
	if !Present(raw) {
		return 0, false
	}
	return ParseLeadingInt(Text(raw))
}

// ParseLeadingInt parses an optionally signed decimal (or 0x-prefixed hex) integer at the start of s,
// ignoring leading whitespace and anything after the digits. Values that overflow int64 are rejected.
func ParseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, isLeadingSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func decode(raw json.RawMessage) (any, bool) {
	if !Present(raw) {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNumber(t)
	case []any:
		parts := make([]string, len(t))
		for i, el := range t {
			if el != nil {
				parts[i] = textOf(el)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// formatNumber renders f the way a JSON client would print it: integers without a
// fraction, exponent notation only for very large or very small magnitudes.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
		return true
	}
	return false
}

func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
