package z3

import (
	"errors"
	"testing"
)

func TestAlgebraicArithmetic(t *testing.T) {
	ctx := testContext(t)

	two := realVal(t, ctx, 2, 1)
	if !two.IsAlgebraicValue() {
		t.Fatal("rational numeral not recognized as algebraic value")
	}

	// sqrt(2)
	root, err := two.AlgebraicRoot(2)
	if err != nil {
		t.Fatalf("AlgebraicRoot: %v", err)
	}
	pos, err := root.AlgebraicIsPositive()
	if err != nil {
		t.Fatalf("AlgebraicIsPositive: %v", err)
	}
	if !pos {
		t.Fatal("sqrt(2) not positive")
	}

	// sqrt(2)^2 == 2
	sq, err := root.AlgebraicPower(2)
	if err != nil {
		t.Fatalf("AlgebraicPower: %v", err)
	}
	eq, err := sq.AlgebraicEq(two)
	if err != nil {
		t.Fatalf("AlgebraicEq: %v", err)
	}
	if !eq {
		t.Fatalf("sqrt(2)^2 = %v, want 2", sq)
	}

	// sqrt(2) - sqrt(2) == 0
	diff, err := root.AlgebraicSub(root)
	if err != nil {
		t.Fatalf("AlgebraicSub: %v", err)
	}
	zero, err := diff.AlgebraicIsZero()
	if err != nil {
		t.Fatalf("AlgebraicIsZero: %v", err)
	}
	if !zero {
		t.Fatalf("sqrt(2) - sqrt(2) = %v, want 0", diff)
	}
}

func TestAlgebraicSign(t *testing.T) {
	ctx := testContext(t)

	cases := []struct {
		num, den int
		want     int
	}{
		{3, 2, 1},
		{-3, 2, -1},
		{0, 1, 0},
	}
	for _, tc := range cases {
		v := realVal(t, ctx, tc.num, tc.den)
		sign, err := v.AlgebraicSign()
		if err != nil {
			t.Fatalf("AlgebraicSign(%d/%d): %v", tc.num, tc.den, err)
		}
		if sign != tc.want {
			t.Fatalf("sign(%d/%d) = %d, want %d", tc.num, tc.den, sign, tc.want)
		}
	}
}

func TestAlgebraicOrdering(t *testing.T) {
	ctx := testContext(t)

	one := realVal(t, ctx, 1, 1)
	two := realVal(t, ctx, 2, 1)

	lt, err := one.AlgebraicLt(two)
	if err != nil {
		t.Fatalf("AlgebraicLt: %v", err)
	}
	if !lt {
		t.Fatal("1 < 2 reported false")
	}
	ge, err := one.AlgebraicGe(two)
	if err != nil {
		t.Fatalf("AlgebraicGe: %v", err)
	}
	if ge {
		t.Fatal("1 >= 2 reported true")
	}
	neq, err := one.AlgebraicNeq(two)
	if err != nil {
		t.Fatalf("AlgebraicNeq: %v", err)
	}
	if !neq {
		t.Fatal("1 != 2 reported false")
	}
}

func TestAlgebraicSortMismatch(t *testing.T) {
	ctx := testContext(t)

	b := ctx.MkTrue()
	two := realVal(t, ctx, 2, 1)

	if _, err := b.AlgebraicAdd(two); !errors.Is(err, ErrSortMismatch) {
		t.Fatalf("AlgebraicAdd with bool operand: err = %v, want ErrSortMismatch", err)
	}
	if _, err := b.AlgebraicSign(); !errors.Is(err, ErrSortMismatch) {
		t.Fatalf("AlgebraicSign of bool: err = %v, want ErrSortMismatch", err)
	}

	// A non-value real term is not an algebraic value either.
	x := ctx.MkRealConst("x")
	if _, err := x.AlgebraicIsZero(); !errors.Is(err, ErrSortMismatch) {
		t.Fatalf("AlgebraicIsZero of variable: err = %v, want ErrSortMismatch", err)
	}
}

func TestAlgebraicCrossContext(t *testing.T) {
	ctx1 := testContext(t)
	ctx2 := testContext(t)

	a := realVal(t, ctx1, 1, 2)
	b := realVal(t, ctx2, 1, 3)
	if _, err := a.AlgebraicMul(b); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("AlgebraicMul across contexts: err = %v, want ErrCrossContext", err)
	}
}
