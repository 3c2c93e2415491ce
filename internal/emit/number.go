package emit

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber prints a numeric literal the way JavaScript prints the
// parsed number. inf is +1 or -1 when the value overflows to infinity.
func formatNumber(literal string) (s string, inf int) {
	f, err := strconv.ParseFloat(literal, 64)
	if math.IsInf(f, 0) {
		if f > 0 {
			return "", 1
		}
		return "", -1
	}
	if err != nil {
		return literal, 0
	}
	if f == 0 {
		return "0", 0
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		e := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(e, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits, 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64), 0
}
