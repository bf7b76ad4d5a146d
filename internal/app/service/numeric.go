package service

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern admits plain decimal notation with an optional exponent.
// Hex floats, Inf and NaN are refused before strconv sees them.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Numeric is a request field that accepts either a JSON number or a string
// holding one, since the dashboard posts raw form values. Parsing happens in
// Validate so malformed input becomes a validation error instead of a
// decode failure.
type Numeric struct {
	raw string
	set bool
}

func NumericOf(v string) Numeric { return Numeric{raw: v, set: true} }

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Numeric{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric{raw: strings.TrimSpace(s), set: true}
		return nil
	}
	// Anything else (numbers, booleans, objects) is kept verbatim and judged later.
	*n = Numeric{raw: string(data), set: true}
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

func (n Numeric) IsSet() bool { return n.set && n.raw != "" }

func (n Numeric) Float() (float64, bool) {
	if !n.IsSet() {
		return 0, false
	}
	if !decimalPattern.MatchString(n.raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FitsScale reports whether the value as written has at most places
// fractional digits, so 2.50 fits 2 places and 2.555 does not.
func (n Numeric) FitsScale(places int) bool {
	if !n.IsSet() || !decimalPattern.MatchString(n.raw) {
		return false
	}
	r, ok := new(big.Rat).SetString(n.raw)
	if !ok {
		return false
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	return r.Mul(r, new(big.Rat).SetInt(scale)).IsInt()
}

// Int accepts integral values written as 10 or 10.0.
func (n Numeric) Int() (int64, bool) {
	if !n.IsSet() {
		return 0, false
	}
	if v, err := strconv.ParseInt(n.raw, 10, 64); err == nil {
		return v, true
	}
	f, ok := n.Float()
	if !ok || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
