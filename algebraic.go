package z3

import (
	"fmt"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Real algebraic number operations. These act on expressions the native
// layer recognizes as algebraic values: rational numerals and irrational
// algebraic numbers such as roots of polynomials.

// IsAlgebraicValue reports whether the expression is an algebraic number
// value usable with the Algebraic operations.
func (e *Expr) IsAlgebraicValue() bool {
	ok := native.AlgebraicIsValue(e.ctx.ptr, e.ptr)
	runtime.KeepAlive(e)
	return ok
}

// checkAlgebraic validates the operands of an algebraic operation before
// calling into the native layer.
func checkAlgebraic(op string, args ...*Expr) error {
	ctx := args[0].ctx
	for _, a := range args {
		if a.ctx != ctx {
			return fmt.Errorf("%w (%s)", ErrCrossContext, op)
		}
		if !a.IsAlgebraicValue() {
			return fmt.Errorf("%w: %s expects an algebraic value, got %s", ErrSortMismatch, op, a.GetSort())
		}
	}
	return nil
}

// AlgebraicSign returns -1, 0 or 1 according to the sign of the value.
func (e *Expr) AlgebraicSign() (int, error) {
	if err := checkAlgebraic("algebraic_sign", e); err != nil {
		return 0, err
	}
	sign := int(native.AlgebraicSign(e.ctx.ptr, e.ptr))
	runtime.KeepAlive(e)
	return sign, e.ctx.check("algebraic_sign")
}

// AlgebraicIsPositive reports whether the value is strictly positive.
func (e *Expr) AlgebraicIsPositive() (bool, error) {
	if err := checkAlgebraic("algebraic_is_pos", e); err != nil {
		return false, err
	}
	ok := native.AlgebraicIsPos(e.ctx.ptr, e.ptr)
	runtime.KeepAlive(e)
	return ok, e.ctx.check("algebraic_is_pos")
}

// AlgebraicIsNegative reports whether the value is strictly negative.
func (e *Expr) AlgebraicIsNegative() (bool, error) {
	if err := checkAlgebraic("algebraic_is_neg", e); err != nil {
		return false, err
	}
	ok := native.AlgebraicIsNeg(e.ctx.ptr, e.ptr)
	runtime.KeepAlive(e)
	return ok, e.ctx.check("algebraic_is_neg")
}

// AlgebraicIsZero reports whether the value is zero.
func (e *Expr) AlgebraicIsZero() (bool, error) {
	if err := checkAlgebraic("algebraic_is_zero", e); err != nil {
		return false, err
	}
	ok := native.AlgebraicIsZero(e.ctx.ptr, e.ptr)
	runtime.KeepAlive(e)
	return ok, e.ctx.check("algebraic_is_zero")
}

func algebraicBinary(op string, fn func(ctx, a, b uintptr) uintptr, a, b *Expr) (*Expr, error) {
	if err := checkAlgebraic(op, a, b); err != nil {
		return nil, err
	}
	out, err := wrapExpr(a.ctx, fn(a.ctx.ptr, a.ptr, b.ptr), op)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	return out, err
}

// AlgebraicAdd returns the sum of two algebraic values.
func (e *Expr) AlgebraicAdd(other *Expr) (*Expr, error) {
	return algebraicBinary("algebraic_add", native.AlgebraicAdd, e, other)
}

// AlgebraicSub returns the difference of two algebraic values.
func (e *Expr) AlgebraicSub(other *Expr) (*Expr, error) {
	return algebraicBinary("algebraic_sub", native.AlgebraicSub, e, other)
}

// AlgebraicMul returns the product of two algebraic values.
func (e *Expr) AlgebraicMul(other *Expr) (*Expr, error) {
	return algebraicBinary("algebraic_mul", native.AlgebraicMul, e, other)
}

// AlgebraicDiv returns the quotient of two algebraic values. Division by
// zero is reported by the native layer.
func (e *Expr) AlgebraicDiv(other *Expr) (*Expr, error) {
	return algebraicBinary("algebraic_div", native.AlgebraicDiv, e, other)
}

// AlgebraicRoot returns the k-th root of the value. k must be positive; even
// roots of negative values are reported by the native layer.
func (e *Expr) AlgebraicRoot(k uint) (*Expr, error) {
	if err := checkAlgebraic("algebraic_root", e); err != nil {
		return nil, err
	}
	out, err := wrapExpr(e.ctx, native.AlgebraicRoot(e.ctx.ptr, e.ptr, uint32(k)), "algebraic_root")
	runtime.KeepAlive(e)
	return out, err
}

// AlgebraicPower returns the value raised to the k-th power.
func (e *Expr) AlgebraicPower(k uint) (*Expr, error) {
	if err := checkAlgebraic("algebraic_power", e); err != nil {
		return nil, err
	}
	out, err := wrapExpr(e.ctx, native.AlgebraicPower(e.ctx.ptr, e.ptr, uint32(k)), "algebraic_power")
	runtime.KeepAlive(e)
	return out, err
}

func algebraicCompare(op string, fn func(ctx, a, b uintptr) bool, a, b *Expr) (bool, error) {
	if err := checkAlgebraic(op, a, b); err != nil {
		return false, err
	}
	ok := fn(a.ctx.ptr, a.ptr, b.ptr)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	return ok, a.ctx.check(op)
}

// AlgebraicLt reports whether the value is less than other.
func (e *Expr) AlgebraicLt(other *Expr) (bool, error) {
	return algebraicCompare("algebraic_lt", native.AlgebraicLt, e, other)
}

// AlgebraicLe reports whether the value is less than or equal to other.
func (e *Expr) AlgebraicLe(other *Expr) (bool, error) {
	return algebraicCompare("algebraic_le", native.AlgebraicLe, e, other)
}

// AlgebraicGt reports whether the value is greater than other.
func (e *Expr) AlgebraicGt(other *Expr) (bool, error) {
	return algebraicCompare("algebraic_gt", native.AlgebraicGt, e, other)
}

// AlgebraicGe reports whether the value is greater than or equal to other.
func (e *Expr) AlgebraicGe(other *Expr) (bool, error) {
	return algebraicCompare("algebraic_ge", native.AlgebraicGe, e, other)
}

// AlgebraicEq reports whether the two values are numerically equal.
func (e *Expr) AlgebraicEq(other *Expr) (bool, error) {
	return algebraicCompare("algebraic_eq", native.AlgebraicEq, e, other)
}

// AlgebraicNeq reports whether the two values are numerically distinct.
func (e *Expr) AlgebraicNeq(other *Expr) (bool, error) {
	return algebraicCompare("algebraic_neq", native.AlgebraicNeq, e, other)
}
