package trepw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//--------------------------------------
// Sky cover from long-wave radiation
//--------------------------------------

const (
	// Coefficients of a*N^3 + b*N^2 + c*N + d = 0
	skyCoverA = 0.00028
	skyCoverB = 0.0035
	skyCoverC = 0.0224

	// Sky cover range in tenths [-]
	SkyCoverMin = 0.0
	SkyCoverMax = 10.0

	// Neutral sky cover when no usable root exists [-]
	SkyCoverFallback = 5.0
)

// How the sky cover was selected from the roots of the cubic
type RootKind int

const (
	RootNone        RootKind = iota // no real root
	RootSingle                      // exactly one real root
	RootNoneInRange                 // several real roots, none in [0, 10]
	RootInRange                     // several real roots, one in [0, 10]
	RootAveraged                    // several real roots in [0, 10], mean value
)

// Tagged result of the root selection
type RootSelection struct {
	Kind  RootKind
	Value float64 // undefined for RootNone and RootNoneInRange
}

// Fallback reports whether the selection did not produce a root.
func (r RootSelection) Fallback() bool {
	return r.Kind == RootNone || r.Kind == RootNoneInRange
}

// SkyCover unwraps the selection to a sky cover in [0, 10].
func (r RootSelection) SkyCover() float64 {
	N := r.Value
	if r.Fallback() {
		N = SkyCoverFallback
	}
	return math.Min(math.Max(N, SkyCoverMin), SkyCoverMax)
}

// CubicRoots returns the roots of a*x^3 + b*x^2 + c*x + d = 0 (a != 0) as the
// eigenvalues of the companion matrix. Real roots have a zero imaginary part.
// nil is returned when the eigenvalue decomposition fails.
func CubicRoots(a float64, b float64, c float64, d float64) []complex128 {
	companion := mat.NewDense(3, 3, []float64{
		-b / a, -c / a, -d / a,
		1, 0, 0,
		0, 1, 0,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil
	}
	return eig.Values(nil)
}

// SelectRoot chooses the sky cover among the roots of the cubic.
func SelectRoot(roots []complex128) RootSelection {
	real_roots := make([]float64, 0, len(roots))
	for _, r := range roots {
		if imag(r) == 0 {
			real_roots = append(real_roots, real(r))
		}
	}

	switch len(real_roots) {
	case 0:
		return RootSelection{Kind: RootNone}
	case 1:
		return RootSelection{Kind: RootSingle, Value: real_roots[0]}
	}

	in_range := make([]float64, 0, len(real_roots))
	for _, N := range real_roots {
		if SkyCoverMin <= N && N <= SkyCoverMax {
			in_range = append(in_range, N)
		}
	}

	switch len(in_range) {
	case 0:
		return RootSelection{Kind: RootNoneInRange}
	case 1:
		return RootSelection{Kind: RootInRange, Value: in_range[0]}
	default:
		return RootSelection{Kind: RootAveraged, Value: stat.Mean(in_range, nil)}
	}
}

// Constant term d of the cubic for one sample
func skyCoverConstant(LWdn float64, Tdb float64, Tdp float64) float64 {
	x := 0.787 + 0.764*math.Log((Tdp+273.15)/273.15)
	return 1 - LWdn/(x*SigmaSB*math.Pow(Tdb+273.15, 4))
}

// SkyCoverSample solves the sky cover of one sample.
func SkyCoverSample(LWdn float64, Tdb float64, Tdp float64) RootSelection {
	d := skyCoverConstant(LWdn, Tdb, Tdp)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return RootSelection{Kind: RootNone}
	}
	return SelectRoot(CubicRoots(skyCoverA, skyCoverB, skyCoverC, d))
}

// SkyCover inverts the long-wave radiation LWdn [W/m2] into sky cover [tenths] using
// Tdb and Tdp [degC]. fallbacks counts samples set to SkyCoverFallback.
// The three series must have the same length.
func SkyCover(LWdn []float64, Tdb []float64, Tdp []float64) (N []float64, fallbacks int) {
	if len(Tdb) != len(LWdn) || len(Tdp) != len(LWdn) {
		panic(fmt.Sprintf("trepw: sky cover input lengths differ: LWdn=%d Tdb=%d Tdp=%d", len(LWdn), len(Tdb), len(Tdp)))
	}
	N = make([]float64, len(LWdn))
	for i := 0; i < len(LWdn); i++ {
		sel := SkyCoverSample(LWdn[i], Tdb[i], Tdp[i])
		if sel.Fallback() {
			fallbacks++
		}
		N[i] = sel.SkyCover()
	}
	return N, fallbacks
}
