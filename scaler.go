package scope

import (
	"math"
)

type ScalerConstraint interface {
	~float64
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Bounds() (T, T)
}

type numberDomain struct {
	fst float64
	lst float64
}

// NumberDomain covers the values from f to t. A reversed domain (f > t) maps
// larger values closer to the start of the range, which is what a y axis
// drawn from the top needs.
func NumberDomain(f, t float64) Domain[float64] {
	if f == t {
		f, t = f-1, t+1
	}
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Bounds() (float64, float64) {
	if n.reversed() {
		return n.lst, n.fst
	}
	return n.fst, n.lst
}

func (n numberDomain) reversed() bool {
	return n.fst > n.lst
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Bounds() (T, T)
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.Range.F + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

// Ticks returns round tick values between lo and hi, aiming at roughly n of
// them. Non finite bounds give no tick at all.
func Ticks(lo, hi float64, n int) []float64 {
	if !isFinite(lo) || !isFinite(hi) || !isFinite(hi-lo) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if n < 2 || lo == hi {
		return []float64{lo, hi}
	}
	step := niceNumber(niceNumber(hi-lo, false)/float64(n-1), true)
	if !isFinite(step) || step <= 0 {
		return []float64{lo, hi}
	}
	var (
		first = math.Ceil(lo/step) * step
		eps   = step * 1e-9
		all   []float64
	)
	for i := 0; i <= maxTicks; i++ {
		v := first + float64(i)*step
		if v > hi+eps {
			break
		}
		if math.Abs(v) < eps {
			v = 0
		}
		all = append(all, v)
	}
	return all
}

const maxTicks = 1000

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Precision gives the number of decimals needed to tell apart consecutive
// values of an evenly spaced list.
func Precision(values []float64) int {
	if len(values) < 2 {
		return 0
	}
	step := math.Abs(values[1] - values[0])
	if step == 0 {
		return 0
	}
	for prec := 0; prec < maxPrecision; prec++ {
		x := step * math.Pow10(prec)
		if math.Abs(x-math.Round(x)) < 1e-6 {
			return prec
		}
	}
	return maxPrecision
}

const maxPrecision = 6

func niceNumber(x float64, round bool) float64 {
	var (
		exp  = math.Floor(math.Log10(x))
		frac = x / math.Pow(10, exp)
		nice float64
	)
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}
