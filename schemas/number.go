// File: schemas/number.go
package schemas

import (
	"strconv"
	"strings"
)

// Number is a numeric field that coerces from a JSON number or a
// numeric-looking string. An empty or whitespace-only string (and null)
// counts as absent rather than zero, so "required" rules still fire on it.
type Number struct {
	value   float64
	raw     string
	present bool
	numeric bool
}

// NumberOf builds a present, valid Number. Used by tests and internal callers.
func NumberOf(v float64) Number {
	return Number{value: v, present: true, numeric: true}
}

// UnmarshalJSON never fails; malformed values are recorded and surfaced
// later as field-level validation errors.
func (n *Number) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "null" {
		*n = Number{}
		return nil
	}

	if strings.HasPrefix(token, `"`) {
		unquoted, err := strconv.Unquote(token)
		if err != nil {
			*n = Number{raw: token, present: true}
			return nil
		}
		unquoted = strings.TrimSpace(unquoted)
		if unquoted == "" {
			*n = Number{}
			return nil
		}
		token = unquoted
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		*n = Number{raw: token, present: true}
		return nil
	}
	*n = Number{value: v, present: true, numeric: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.present || !n.numeric {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
}

// Float64 returns the coerced value; zero when absent or non-numeric.
func (n Number) Float64() float64 { return n.value }

// Present reports whether any non-empty value was supplied.
func (n Number) Present() bool { return n.present }

// Numeric reports whether the supplied value coerced to a number.
func (n Number) Numeric() bool { return n.numeric }
