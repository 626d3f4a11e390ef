package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency value in BRL.
//
// Prices and payments arrive from forms, the AI extractor and older cached
// snapshots, so decoding is lenient: numbers, numeric strings ("50", "50,00")
// and null are accepted, anything else decodes to zero instead of failing.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*a = Amount(n).Sanitized()
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = ParseAmount(s)
		return nil
	}

	*a = 0
	return nil
}

// ParseAmount reads a user-typed amount. Unparseable input is zero.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Amount(f).Sanitized()
}

// Sanitized maps NaN and infinities to zero.
func (a Amount) Sanitized() Amount {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(a.Sanitized()))
}
