package orderbook

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var smallThreshold = decimal.RequireFromString("0.0001")

// formatToken renders d as the checksum wire format requires: an integer
// gets a trailing ".0", a magnitude below 0.0001 is rendered in scientific
// notation with a zero-padded two-digit exponent, everything else uses its
// canonical decimal form with no superfluous trailing zeros. This format is
// part of the exchange's interop contract, not a display preference.
func formatToken(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String() + ".0"
	}
	if d.Abs().LessThan(smallThreshold) {
		return formatScientific(d)
	}
	return canonicalDecimalString(d)
}

func canonicalDecimalString(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// formatScientific renders |d| < 0.0001 as "<mantissa>e<sign><2-digit exp>",
// operating on the decimal string directly to avoid floating point or
// division rounding in the mantissa.
func formatScientific(d decimal.Decimal) string {
	neg := d.Sign() < 0
	s := d.Abs().String()

	_, fracPart, _ := strings.Cut(s, ".")

	lead := 0
	for lead < len(fracPart) && fracPart[lead] == '0' {
		lead++
	}
	digits := fracPart[lead:]
	if digits == "" {
		digits = "0"
	}

	exp := -(lead + 1)

	var mantissa string
	if len(digits) == 1 {
		mantissa = digits
	} else {
		mantissa = digits[:1] + "." + strings.TrimRight(digits[1:], "0")
		mantissa = strings.TrimSuffix(mantissa, ".")
	}

	sign := ""
	if neg {
		sign = "-"
	}
	expSign := "+"
	e := exp
	if e < 0 {
		expSign = "-"
		e = -e
	}

	return sign + mantissa + "e" + expSign + padExponent(e)
}

func padExponent(e int) string {
	if e < 10 {
		return "0" + strconv.Itoa(e)
	}
	return strconv.Itoa(e)
}
