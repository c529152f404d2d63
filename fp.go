package z3

import (
	"fmt"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Floating-point arithmetic (IEEE 754)

// MkFPASort creates a floating-point sort with the given exponent and
// significand widths.
func (c *Context) MkFPASort(ebits, sbits uint) *Sort {
	return mustSort(c, native.MkFPASort(c.ptr, uint32(ebits), uint32(sbits)), "mk_fpa_sort")
}

// MkFPASort16 creates the half-precision (16-bit) floating-point sort.
func (c *Context) MkFPASort16() *Sort {
	return mustSort(c, native.MkFPASort16(c.ptr), "mk_fpa_sort_16")
}

// MkFPASort32 creates the single-precision (32-bit) floating-point sort.
func (c *Context) MkFPASort32() *Sort {
	return mustSort(c, native.MkFPASort32(c.ptr), "mk_fpa_sort_32")
}

// MkFPASort64 creates the double-precision (64-bit) floating-point sort.
func (c *Context) MkFPASort64() *Sort {
	return mustSort(c, native.MkFPASort64(c.ptr), "mk_fpa_sort_64")
}

// MkFPASort128 creates the quadruple-precision (128-bit) floating-point sort.
func (c *Context) MkFPASort128() *Sort {
	return mustSort(c, native.MkFPASort128(c.ptr), "mk_fpa_sort_128")
}

// MkFPARoundingModeSort creates the rounding mode sort.
func (c *Context) MkFPARoundingModeSort() *Sort {
	return mustSort(c, native.MkFPARoundingModeSort(c.ptr), "mk_fpa_rounding_mode_sort")
}

// Rounding modes

// MkFPARoundNearestTiesToEven creates the round-nearest-ties-to-even mode.
func (c *Context) MkFPARoundNearestTiesToEven() *Expr {
	return mustExpr(c, native.MkFPARoundNearestTiesToEven(c.ptr), "mk_fpa_rne")
}

// MkFPARoundNearestTiesToAway creates the round-nearest-ties-to-away mode.
func (c *Context) MkFPARoundNearestTiesToAway() *Expr {
	return mustExpr(c, native.MkFPARoundNearestTiesToAway(c.ptr), "mk_fpa_rna")
}

// MkFPARoundTowardPositive creates the round-toward-positive mode.
func (c *Context) MkFPARoundTowardPositive() *Expr {
	return mustExpr(c, native.MkFPARoundTowardPositive(c.ptr), "mk_fpa_rtp")
}

// MkFPARoundTowardNegative creates the round-toward-negative mode.
func (c *Context) MkFPARoundTowardNegative() *Expr {
	return mustExpr(c, native.MkFPARoundTowardNegative(c.ptr), "mk_fpa_rtn")
}

// MkFPARoundTowardZero creates the round-toward-zero mode.
func (c *Context) MkFPARoundTowardZero() *Expr {
	return mustExpr(c, native.MkFPARoundTowardZero(c.ptr), "mk_fpa_rtz")
}

// checkFPAContext validates that every operand belongs to c.
func checkFPAContext(op string, c *Context, args ...*Expr) error {
	for _, a := range args {
		if a.ctx != c {
			return fmt.Errorf("%w (%s)", ErrCrossContext, op)
		}
	}
	return nil
}

// checkRoundingMode validates that rm has the rounding mode sort.
func checkRoundingMode(op string, rm *Expr) error {
	if rm.GetSort().Kind() != RoundingModeSort {
		return fmt.Errorf("%w: %s expects a rounding mode, got %s", ErrSortMismatch, op, rm.GetSort())
	}
	return nil
}

// checkFPASort validates that sort is a floating-point sort of context c.
func checkFPASort(op string, c *Context, sort *Sort) error {
	if sort.ctx != c {
		return fmt.Errorf("%w (%s)", ErrCrossContext, op)
	}
	if sort.Kind() != FloatingPointSort {
		return fmt.Errorf("%w: %s expects a floating-point sort, got %s", ErrSortMismatch, op, sort)
	}
	return nil
}

// Numerals and special values

// MkFPANumeralDouble creates a floating-point numeral from a float64,
// rounded to the given floating-point sort.
func (c *Context) MkFPANumeralDouble(v float64, sort *Sort) (*Expr, error) {
	if err := checkFPASort("mk_fpa_numeral_double", c, sort); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPANumeralDouble(c.ptr, v, sort.ptr), "mk_fpa_numeral_double")
	runtime.KeepAlive(sort)
	return e, err
}

// MkFPANumeralInt creates a floating-point numeral from an int.
func (c *Context) MkFPANumeralInt(v int, sort *Sort) (*Expr, error) {
	if err := checkFPASort("mk_fpa_numeral_int", c, sort); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPANumeralInt(c.ptr, int32(v), sort.ptr), "mk_fpa_numeral_int")
	runtime.KeepAlive(sort)
	return e, err
}

// MkFPAInf creates a floating-point infinity of the given sort.
func (c *Context) MkFPAInf(sort *Sort, negative bool) (*Expr, error) {
	if err := checkFPASort("mk_fpa_inf", c, sort); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPAInf(c.ptr, sort.ptr, negative), "mk_fpa_inf")
	runtime.KeepAlive(sort)
	return e, err
}

// MkFPANaN creates a floating-point NaN of the given sort.
func (c *Context) MkFPANaN(sort *Sort) (*Expr, error) {
	if err := checkFPASort("mk_fpa_nan", c, sort); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPANaN(c.ptr, sort.ptr), "mk_fpa_nan")
	runtime.KeepAlive(sort)
	return e, err
}

// MkFPAZero creates a floating-point zero of the given sort.
func (c *Context) MkFPAZero(sort *Sort, negative bool) (*Expr, error) {
	if err := checkFPASort("mk_fpa_zero", c, sort); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPAZero(c.ptr, sort.ptr, negative), "mk_fpa_zero")
	runtime.KeepAlive(sort)
	return e, err
}

// Arithmetic

func (c *Context) fpaRounded2(op string, fn func(ctx, rm, a, b uintptr) uintptr, rm, a, b *Expr) (*Expr, error) {
	if err := checkFPAContext(op, c, rm, a, b); err != nil {
		return nil, err
	}
	if err := checkRoundingMode(op, rm); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, fn(c.ptr, rm.ptr, a.ptr, b.ptr), op)
	runtime.KeepAlive(rm)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	return e, err
}

// MkFPAAdd creates a floating-point addition with the given rounding mode.
func (c *Context) MkFPAAdd(rm, a, b *Expr) (*Expr, error) {
	return c.fpaRounded2("mk_fpa_add", native.MkFPAAdd, rm, a, b)
}

// MkFPASub creates a floating-point subtraction with the given rounding mode.
func (c *Context) MkFPASub(rm, a, b *Expr) (*Expr, error) {
	return c.fpaRounded2("mk_fpa_sub", native.MkFPASub, rm, a, b)
}

// MkFPAMul creates a floating-point multiplication with the given rounding
// mode.
func (c *Context) MkFPAMul(rm, a, b *Expr) (*Expr, error) {
	return c.fpaRounded2("mk_fpa_mul", native.MkFPAMul, rm, a, b)
}

// MkFPADiv creates a floating-point division with the given rounding mode.
func (c *Context) MkFPADiv(rm, a, b *Expr) (*Expr, error) {
	return c.fpaRounded2("mk_fpa_div", native.MkFPADiv, rm, a, b)
}

// MkFPAFMA creates a fused multiply-add: round(a*b + acc).
func (c *Context) MkFPAFMA(rm, a, b, acc *Expr) (*Expr, error) {
	if err := checkFPAContext("mk_fpa_fma", c, rm, a, b, acc); err != nil {
		return nil, err
	}
	if err := checkRoundingMode("mk_fpa_fma", rm); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPAFMA(c.ptr, rm.ptr, a.ptr, b.ptr, acc.ptr), "mk_fpa_fma")
	runtime.KeepAlive(rm)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	runtime.KeepAlive(acc)
	return e, err
}

// MkFPASqrt creates a floating-point square root with the given rounding
// mode.
func (c *Context) MkFPASqrt(rm, a *Expr) (*Expr, error) {
	if err := checkFPAContext("mk_fpa_sqrt", c, rm, a); err != nil {
		return nil, err
	}
	if err := checkRoundingMode("mk_fpa_sqrt", rm); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPASqrt(c.ptr, rm.ptr, a.ptr), "mk_fpa_sqrt")
	runtime.KeepAlive(rm)
	runtime.KeepAlive(a)
	return e, err
}

// MkFPARoundToIntegral rounds a to an integral-valued float under rm.
func (c *Context) MkFPARoundToIntegral(rm, a *Expr) (*Expr, error) {
	if err := checkFPAContext("mk_fpa_round_to_integral", c, rm, a); err != nil {
		return nil, err
	}
	if err := checkRoundingMode("mk_fpa_round_to_integral", rm); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPARoundToIntegral(c.ptr, rm.ptr, a.ptr), "mk_fpa_round_to_integral")
	runtime.KeepAlive(rm)
	runtime.KeepAlive(a)
	return e, err
}

// MkFPANeg creates a floating-point negation.
func (c *Context) MkFPANeg(a *Expr) (*Expr, error) {
	if err := checkFPAContext("mk_fpa_neg", c, a); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPANeg(c.ptr, a.ptr), "mk_fpa_neg")
	runtime.KeepAlive(a)
	return e, err
}

// MkFPAAbs creates a floating-point absolute value.
func (c *Context) MkFPAAbs(a *Expr) (*Expr, error) {
	if err := checkFPAContext("mk_fpa_abs", c, a); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPAAbs(c.ptr, a.ptr), "mk_fpa_abs")
	runtime.KeepAlive(a)
	return e, err
}

func (c *Context) fpaBinary(op string, fn func(ctx, a, b uintptr) uintptr, a, b *Expr) (*Expr, error) {
	if err := checkFPAContext(op, c, a, b); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, fn(c.ptr, a.ptr, b.ptr), op)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	return e, err
}

// MkFPARem creates a floating-point remainder.
func (c *Context) MkFPARem(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_rem", native.MkFPARem, a, b)
}

// MkFPAMin creates a floating-point minimum.
func (c *Context) MkFPAMin(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_min", native.MkFPAMin, a, b)
}

// MkFPAMax creates a floating-point maximum.
func (c *Context) MkFPAMax(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_max", native.MkFPAMax, a, b)
}

// Comparisons

// MkFPALt creates a floating-point less-than comparison.
func (c *Context) MkFPALt(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_lt", native.MkFPALt, a, b)
}

// MkFPAGt creates a floating-point greater-than comparison.
func (c *Context) MkFPAGt(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_gt", native.MkFPAGt, a, b)
}

// MkFPALeq creates a floating-point less-than-or-equal comparison.
func (c *Context) MkFPALeq(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_leq", native.MkFPALeq, a, b)
}

// MkFPAGeq creates a floating-point greater-than-or-equal comparison.
func (c *Context) MkFPAGeq(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_geq", native.MkFPAGeq, a, b)
}

// MkFPAEq creates an IEEE floating-point equality. Unlike MkEq, this is the
// IEEE relation: NaN is not equal to itself and -0 equals +0.
func (c *Context) MkFPAEq(a, b *Expr) (*Expr, error) {
	return c.fpaBinary("mk_fpa_eq", native.MkFPAEq, a, b)
}

// Classification predicates

func (c *Context) fpaUnary(op string, fn func(ctx, a uintptr) uintptr, a *Expr) (*Expr, error) {
	if err := checkFPAContext(op, c, a); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, fn(c.ptr, a.ptr), op)
	runtime.KeepAlive(a)
	return e, err
}

// MkFPAIsNaN creates a NaN test predicate.
func (c *Context) MkFPAIsNaN(a *Expr) (*Expr, error) {
	return c.fpaUnary("mk_fpa_is_nan", native.MkFPAIsNaN, a)
}

// MkFPAIsInfinite creates an infinity test predicate.
func (c *Context) MkFPAIsInfinite(a *Expr) (*Expr, error) {
	return c.fpaUnary("mk_fpa_is_infinite", native.MkFPAIsInfinite, a)
}

// MkFPAIsZero creates a zero test predicate.
func (c *Context) MkFPAIsZero(a *Expr) (*Expr, error) {
	return c.fpaUnary("mk_fpa_is_zero", native.MkFPAIsZero, a)
}

// MkFPAIsNormal creates a normal number test predicate.
func (c *Context) MkFPAIsNormal(a *Expr) (*Expr, error) {
	return c.fpaUnary("mk_fpa_is_normal", native.MkFPAIsNormal, a)
}

// MkFPAIsSubnormal creates a subnormal number test predicate.
func (c *Context) MkFPAIsSubnormal(a *Expr) (*Expr, error) {
	return c.fpaUnary("mk_fpa_is_subnormal", native.MkFPAIsSubnormal, a)
}

// MkFPAIsPositive creates a positivity test predicate.
func (c *Context) MkFPAIsPositive(a *Expr) (*Expr, error) {
	return c.fpaUnary("mk_fpa_is_positive", native.MkFPAIsPositive, a)
}

// MkFPAIsNegative creates a negativity test predicate.
func (c *Context) MkFPAIsNegative(a *Expr) (*Expr, error) {
	return c.fpaUnary("mk_fpa_is_negative", native.MkFPAIsNegative, a)
}

// Conversions

// MkFPAToFPFloat converts a floating-point term t to the target
// floating-point sort under rm.
func (c *Context) MkFPAToFPFloat(rm, t *Expr, sort *Sort) (*Expr, error) {
	if err := checkFPAContext("mk_fpa_to_fp_float", c, rm, t); err != nil {
		return nil, err
	}
	if err := checkRoundingMode("mk_fpa_to_fp_float", rm); err != nil {
		return nil, err
	}
	if err := checkFPASort("mk_fpa_to_fp_float", c, sort); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPAToFPFloat(c.ptr, rm.ptr, t.ptr, sort.ptr), "mk_fpa_to_fp_float")
	runtime.KeepAlive(rm)
	runtime.KeepAlive(t)
	runtime.KeepAlive(sort)
	return e, err
}

// MkFPAToReal converts a floating-point term to a real number term.
func (c *Context) MkFPAToReal(t *Expr) (*Expr, error) {
	if err := checkFPAContext("mk_fpa_to_real", c, t); err != nil {
		return nil, err
	}
	e, err := wrapExpr(c, native.MkFPAToReal(c.ptr, t.ptr), "mk_fpa_to_real")
	runtime.KeepAlive(t)
	return e, err
}

// NumeralDouble returns the value of a numeral expression as a float64.
func (e *Expr) NumeralDouble() float64 {
	v := native.GetNumeralDouble(e.ctx.ptr, e.ptr)
	runtime.KeepAlive(e)
	return v
}
