package z3

import (
	"errors"
	"testing"
)

func TestFPAConstruction(t *testing.T) {
	ctx := testContext(t)

	f64 := ctx.MkFPASort64()
	if f64.Kind() != FloatingPointSort {
		t.Fatalf("sort kind = %d, want FloatingPointSort", f64.Kind())
	}

	rm := ctx.MkFPARoundNearestTiesToEven()
	if rm.GetSort().Kind() != RoundingModeSort {
		t.Fatal("rounding mode has wrong sort")
	}

	a, err := ctx.MkFPANumeralDouble(1.5, f64)
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}
	b, err := ctx.MkFPANumeralDouble(2.25, f64)
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}

	sum, err := ctx.MkFPAAdd(rm, a, b)
	if err != nil {
		t.Fatalf("MkFPAAdd: %v", err)
	}
	want, err := ctx.MkFPANumeralDouble(3.75, f64)
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}
	eq, err := ctx.MkFPAEq(sum, want)
	if err != nil {
		t.Fatalf("MkFPAEq: %v", err)
	}
	if !eq.Simplify().Equal(ctx.MkTrue()) {
		t.Fatalf("1.5 + 2.25 != 3.75: %v", sum.Simplify())
	}
}

func TestFPARoundingModeCheck(t *testing.T) {
	ctx := testContext(t)

	f32 := ctx.MkFPASort32()
	a, err := ctx.MkFPANumeralDouble(1, f32)
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}

	// An int where a rounding mode is required.
	notRM := ctx.MkInt(0, ctx.MkIntSort())
	if _, err := ctx.MkFPAAdd(notRM, a, a); !errors.Is(err, ErrSortMismatch) {
		t.Fatalf("MkFPAAdd with int rounding mode: err = %v, want ErrSortMismatch", err)
	}

	// A non-FP sort where a float sort is required.
	if _, err := ctx.MkFPANaN(ctx.MkIntSort()); !errors.Is(err, ErrSortMismatch) {
		t.Fatalf("MkFPANaN of int sort: err = %v, want ErrSortMismatch", err)
	}
}

func TestFPACrossContext(t *testing.T) {
	ctx1 := testContext(t)
	ctx2 := testContext(t)

	rm := ctx1.MkFPARoundNearestTiesToEven()
	f64 := ctx1.MkFPASort64()
	a, err := ctx1.MkFPANumeralDouble(1, f64)
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}
	foreign, err := ctx2.MkFPANumeralDouble(2, ctx2.MkFPASort64())
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}

	if _, err := ctx1.MkFPAAdd(rm, a, foreign); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("MkFPAAdd with foreign operand: err = %v, want ErrCrossContext", err)
	}
	if _, err := ctx1.MkFPAMin(a, foreign); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("MkFPAMin with foreign operand: err = %v, want ErrCrossContext", err)
	}
	if _, err := ctx1.MkFPANeg(foreign); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("MkFPANeg of foreign operand: err = %v, want ErrCrossContext", err)
	}
	if _, err := ctx1.MkFPANaN(ctx2.MkFPASort64()); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("MkFPANaN of foreign sort: err = %v, want ErrCrossContext", err)
	}
}

func TestFPASpecialValues(t *testing.T) {
	ctx := testContext(t)

	f64 := ctx.MkFPASort64()
	nan, err := ctx.MkFPANaN(f64)
	if err != nil {
		t.Fatalf("MkFPANaN: %v", err)
	}
	isNaN, err := ctx.MkFPAIsNaN(nan)
	if err != nil {
		t.Fatalf("MkFPAIsNaN: %v", err)
	}
	if !isNaN.Simplify().Equal(ctx.MkTrue()) {
		t.Fatal("isNaN(NaN) did not simplify to true")
	}

	// NaN is not IEEE-equal to itself.
	eq, err := ctx.MkFPAEq(nan, nan)
	if err != nil {
		t.Fatalf("MkFPAEq: %v", err)
	}
	if !eq.Simplify().Equal(ctx.MkFalse()) {
		t.Fatal("NaN == NaN did not simplify to false")
	}

	inf, err := ctx.MkFPAInf(f64, true)
	if err != nil {
		t.Fatalf("MkFPAInf: %v", err)
	}
	isNeg, err := ctx.MkFPAIsNegative(inf)
	if err != nil {
		t.Fatalf("MkFPAIsNegative: %v", err)
	}
	if !isNeg.Simplify().Equal(ctx.MkTrue()) {
		t.Fatal("-inf not negative")
	}
}

func TestFPAConversions(t *testing.T) {
	ctx := testContext(t)

	f64 := ctx.MkFPASort64()
	f32 := ctx.MkFPASort32()
	rm := ctx.MkFPARoundTowardZero()

	a, err := ctx.MkFPANumeralDouble(0.5, f64)
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}

	narrowed, err := ctx.MkFPAToFPFloat(rm, a, f32)
	if err != nil {
		t.Fatalf("MkFPAToFPFloat: %v", err)
	}
	if narrowed.GetSort().Kind() != FloatingPointSort {
		t.Fatal("conversion produced non-FP sort")
	}

	asReal, err := ctx.MkFPAToReal(a)
	if err != nil {
		t.Fatalf("MkFPAToReal: %v", err)
	}
	if asReal.GetSort().Kind() != RealSort {
		t.Fatalf("MkFPAToReal sort kind = %d, want RealSort", asReal.GetSort().Kind())
	}
	if got := asReal.Simplify().NumeralDouble(); got != 0.5 {
		t.Fatalf("toReal(0.5) = %v, want 0.5", got)
	}
}

func TestFPAMinMaxFMA(t *testing.T) {
	ctx := testContext(t)

	f64 := ctx.MkFPASort64()
	rm := ctx.MkFPARoundNearestTiesToEven()

	one, _ := ctx.MkFPANumeralDouble(1, f64)
	two, _ := ctx.MkFPANumeralDouble(2, f64)
	three, _ := ctx.MkFPANumeralDouble(3, f64)

	min, err := ctx.MkFPAMin(one, two)
	if err != nil {
		t.Fatalf("MkFPAMin: %v", err)
	}
	eqMin, err := ctx.MkFPAEq(min, one)
	if err != nil {
		t.Fatalf("MkFPAEq: %v", err)
	}
	if !eqMin.Simplify().Equal(ctx.MkTrue()) {
		t.Fatalf("min(1, 2) = %v, want 1", min.Simplify())
	}

	// 2*3 + 1 = 7
	fma, err := ctx.MkFPAFMA(rm, two, three, one)
	if err != nil {
		t.Fatalf("MkFPAFMA: %v", err)
	}
	seven, err := ctx.MkFPANumeralDouble(7, f64)
	if err != nil {
		t.Fatalf("MkFPANumeralDouble: %v", err)
	}
	eqFMA, err := ctx.MkFPAEq(fma, seven)
	if err != nil {
		t.Fatalf("MkFPAEq: %v", err)
	}
	if !eqFMA.Simplify().Equal(ctx.MkTrue()) {
		t.Fatalf("fma(2, 3, 1) = %v, want 7", fma.Simplify())
	}
}
