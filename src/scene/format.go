package scene

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var siPrefixes = []string{"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// precisionFor returns the number of decimals that keeps sig significant
// digits of x; negative means rounding left of the decimal point.
func precisionFor(x float64, sig int) int {
	if x == 0 {
		return sig - 1
	}
	return sig - int(math.Ceil(math.Log10(math.Abs(x))))
}

func roundDecimals(x float64, n int) float64 {
	if n < 0 {
		p := math.Pow(10, float64(-n))
		return math.Round(x/p) * p
	}
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}

// FormatSI formats v with sig significant digits and an SI suffix,
// e.g. 3 → "3", 40 → "40", 600 → "600", 1000 → "1k", 0.5 → "500m".
func FormatSI(v float64, sig int) string {
	if sig < 1 {
		sig = 1
	}
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	neg := v < 0
	a := math.Abs(v)
	a = roundDecimals(a, precisionFor(a, sig))
	e := int(math.Floor((1+math.Floor(1e-12+math.Log10(a))-1)/3)) * 3
	if e < -24 {
		e = -24
	}
	if e > 24 {
		e = 24
	}
	scaled := a / math.Pow(10, float64(e))
	scaled = roundDecimals(scaled, precisionFor(scaled, sig))
	dec := precisionFor(scaled*(1+1e-15), sig)
	if dec < 0 {
		dec = 0
	}
	if dec > 20 {
		dec = 20
	}
	s := strconv.FormatFloat(scaled, 'f', dec, 64)
	if neg {
		s = "-" + s
	}
	return s + siPrefixes[8+e/3]
}

// FormatFixed formats v with prec decimals and thousands separators.
func FormatFixed(v float64, prec int) string {
	if prec <= 0 {
		r := math.Round(v)
		if r == 0 {
			r = 0 // drop negative zero
		}
		return humanize.Comma(int64(r))
	}
	return humanize.FormatFloat("#,###."+strings.Repeat("#", prec), v)
}

// FormatCurrency renders a dollar amount with cents, e.g. "$1,234.50".
func FormatCurrency(v float64) string {
	s := humanize.FormatFloat("#,###.##", math.Abs(v))
	if v < 0 {
		return "-$" + s
	}
	return "$" + s
}

// FormatAge renders an age without trailing zeros, e.g. 22 → "22", 0.42 → "0.42".
func FormatAge(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
