package scene

import (
	"math"
)

// LinearScale maps [D0,D1] onto [R0,R1] linearly. Values outside the
// domain extrapolate.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

// Map returns the range value for v.
func (s LinearScale) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return s.R0
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert maps a range value back to the domain.
func (s LinearScale) Invert(r float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	return s.D0 + (r-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// tickStep picks a 1, 2 or 5 × 10^k step giving roughly count ticks over span.
func tickStep(span float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	step := math.Pow(10, math.Floor(math.Log10(span/float64(count))))
	err := float64(count) / span * step
	switch {
	case err <= 0.15:
		step *= 10
	case err <= 0.35:
		step *= 5
	case err <= 0.75:
		step *= 2
	}
	return step
}

// Ticks returns about count evenly spaced round values inside the domain.
func (s LinearScale) Ticks(count int) []float64 {
	lo, hi := math.Min(s.D0, s.D1), math.Max(s.D0, s.D1)
	if hi <= lo || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	step := tickStep(hi-lo, count)
	start := math.Ceil(lo/step) * step
	stop := math.Floor(hi/step)*step + step*0.5
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		v = roundTo(v, step)
		if v == 0 {
			v = 0 // no negative zero
		}
		out = append(out, v)
	}
	return out
}

// TickFormat returns a formatter with just enough decimals for the step
// that Ticks(count) would use.
func (s LinearScale) TickFormat(count int) func(float64) string {
	lo, hi := math.Min(s.D0, s.D1), math.Max(s.D0, s.D1)
	prec := 0
	if hi > lo {
		step := tickStep(hi-lo, count)
		prec = int(-math.Floor(math.Log10(step) + 0.01))
		if prec < 0 {
			prec = 0
		}
	}
	return func(v float64) string { return FormatFixed(v, prec) }
}

// LogScale maps [D0,D1] onto [R0,R1] logarithmically. Domain values must be
// strictly positive; non-positive inputs map to NaN.
type LogScale struct {
	D0, D1 float64
	R0, R1 float64
	Base   float64
}

func (s LogScale) base() float64 {
	if s.Base <= 0 || s.Base == 1 {
		return 10
	}
	return s.Base
}

func (s LogScale) log(v float64) float64 { return math.Log(v) / math.Log(s.base()) }
func (s LogScale) pow(v float64) float64 { return math.Pow(s.base(), v) }

// Map returns the range value for v.
func (s LogScale) Map(v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	return LinearScale{D0: s.log(s.D0), D1: s.log(s.D1), R0: s.R0, R1: s.R1}.Map(s.log(v))
}

// Invert maps a range value back to the domain.
func (s LogScale) Invert(r float64) float64 {
	return s.pow(LinearScale{D0: s.log(s.D0), D1: s.log(s.D1), R0: s.R0, R1: s.R1}.Invert(r))
}

// Ticks returns every k·base^i (k = 1..base-1) that falls inside the domain.
func (s LogScale) Ticks() []float64 {
	lo, hi := math.Min(s.D0, s.D1), math.Max(s.D0, s.D1)
	if lo <= 0 {
		return nil
	}
	b := s.base()
	n := int(b)
	if b != math.Trunc(b) {
		n = 2
	}
	i := int(math.Floor(s.log(lo)))
	j := int(math.Ceil(s.log(hi)))
	var all []float64
	for ; i < j; i++ {
		p := s.pow(float64(i))
		for k := 1; k < n; k++ {
			all = append(all, roundSig(p*float64(k), 12))
		}
	}
	all = append(all, roundSig(s.pow(float64(i)), 12))
	var out []float64
	for _, v := range all {
		if v >= lo && v <= hi {
			out = append(out, v)
		}
	}
	return out
}

// TickFormat labels the ticks of a log axis the way a count-limited log axis
// does: a tick is labelled only when its leading digit is small enough for
// roughly count labels to fit; the rest get an empty label.
func (s LogScale) TickFormat(count int, format func(float64) string) func(float64) string {
	b := s.base()
	ticks := s.Ticks()
	k := 1.0
	if len(ticks) > 0 {
		k = math.Max(1, b*float64(count)/float64(len(ticks)))
	}
	return func(d float64) string {
		if d <= 0 {
			return ""
		}
		i := d / s.pow(math.Round(s.log(d)))
		if i*b < b-0.5 {
			i *= b
		}
		if i <= k {
			return format(d)
		}
		return ""
	}
}

func roundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	dec := -math.Floor(math.Log10(step))
	if dec < 0 {
		dec = 0
	}
	p := math.Pow(10, dec)
	return math.Round(v*p) / p
}

func roundSig(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	e := math.Ceil(math.Log10(math.Abs(v)))
	p := math.Pow(10, float64(digits)-e)
	return math.Round(v*p) / p
}
