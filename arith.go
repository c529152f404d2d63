package z3

import (
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Arithmetic operations and sorts

// MkIntSort creates the integer sort.
func (c *Context) MkIntSort() *Sort {
	return mustSort(c, native.MkIntSort(c.ptr), "mk_int_sort")
}

// MkRealSort creates the real number sort.
func (c *Context) MkRealSort() *Sort {
	return mustSort(c, native.MkRealSort(c.ptr), "mk_real_sort")
}

// MkInt creates an integer constant from an int.
func (c *Context) MkInt(value int, sort *Sort) *Expr {
	return mustExpr(c, native.MkInt(c.ptr, int32(value), sort.ptr), "mk_int")
}

// MkInt64 creates an integer constant from an int64.
func (c *Context) MkInt64(value int64, sort *Sort) *Expr {
	return mustExpr(c, native.MkInt64(c.ptr, value, sort.ptr), "mk_int64")
}

// MkReal creates a real constant from numerator and denominator. A zero
// denominator is reported as an error.
func (c *Context) MkReal(num, den int) (*Expr, error) {
	return wrapExpr(c, native.MkReal(c.ptr, int32(num), int32(den)), "mk_real")
}

// MkIntConst creates an integer constant (variable) with the given name.
func (c *Context) MkIntConst(name string) *Expr {
	return c.MkConst(c.MkStringSymbol(name), c.MkIntSort())
}

// MkRealConst creates a real constant (variable) with the given name.
func (c *Context) MkRealConst(name string) *Expr {
	return c.MkConst(c.MkStringSymbol(name), c.MkRealSort())
}

// NumeralString returns the string representation of a numeral expression.
func (e *Expr) NumeralString() string {
	return native.GetNumeralString(e.ctx.ptr, e.ptr)
}

// MkAdd creates an addition.
func (c *Context) MkAdd(exprs ...*Expr) *Expr {
	if len(exprs) == 0 {
		return c.MkInt(0, c.MkIntSort())
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	args := astPtrs(exprs)
	e := mustExpr(c, native.MkAdd(c.ptr, uint32(len(args)), &args[0]), "mk_add")
	runtime.KeepAlive(exprs)
	return e
}

// MkSub creates a subtraction.
func (c *Context) MkSub(exprs ...*Expr) *Expr {
	if len(exprs) == 0 {
		return c.MkInt(0, c.MkIntSort())
	}
	if len(exprs) == 1 {
		return mustExpr(c, native.MkUnaryMinus(c.ptr, exprs[0].ptr), "mk_unary_minus")
	}
	args := astPtrs(exprs)
	e := mustExpr(c, native.MkSub(c.ptr, uint32(len(args)), &args[0]), "mk_sub")
	runtime.KeepAlive(exprs)
	return e
}

// MkMul creates a multiplication.
func (c *Context) MkMul(exprs ...*Expr) *Expr {
	if len(exprs) == 0 {
		return c.MkInt(1, c.MkIntSort())
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	args := astPtrs(exprs)
	e := mustExpr(c, native.MkMul(c.ptr, uint32(len(args)), &args[0]), "mk_mul")
	runtime.KeepAlive(exprs)
	return e
}

// MkDiv creates a division.
func (c *Context) MkDiv(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkDiv(c.ptr, lhs.ptr, rhs.ptr), "mk_div")
}

// MkMod creates a modulo operation.
func (c *Context) MkMod(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkMod(c.ptr, lhs.ptr, rhs.ptr), "mk_mod")
}

// MkRem creates a remainder operation.
func (c *Context) MkRem(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkRem(c.ptr, lhs.ptr, rhs.ptr), "mk_rem")
}

// MkPower creates an exponentiation.
func (c *Context) MkPower(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkPower(c.ptr, lhs.ptr, rhs.ptr), "mk_power")
}

// MkLt creates a less-than constraint.
func (c *Context) MkLt(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkLt(c.ptr, lhs.ptr, rhs.ptr), "mk_lt")
}

// MkLe creates a less-than-or-equal constraint.
func (c *Context) MkLe(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkLe(c.ptr, lhs.ptr, rhs.ptr), "mk_le")
}

// MkGt creates a greater-than constraint.
func (c *Context) MkGt(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkGt(c.ptr, lhs.ptr, rhs.ptr), "mk_gt")
}

// MkGe creates a greater-than-or-equal constraint.
func (c *Context) MkGe(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkGe(c.ptr, lhs.ptr, rhs.ptr), "mk_ge")
}
