package z3

import (
	"errors"
	"testing"
)

func TestPolynomialSubresultants(t *testing.T) {
	ctx := testContext(t)

	x := ctx.MkRealConst("x")
	y := ctx.MkRealConst("y")

	// p = x^2 + y, q = x + 1: eliminating x leaves a polynomial in y.
	p := ctx.MkAdd(ctx.MkMul(x, x), y)
	q := ctx.MkAdd(x, realVal(t, ctx, 1, 1))

	subs, err := ctx.PolynomialSubresultants(p, q, x)
	if err != nil {
		t.Fatalf("PolynomialSubresultants: %v", err)
	}
	if subs.Len() == 0 {
		t.Fatal("no subresultants for nontrivial polynomials")
	}
	for e := range subs.All() {
		if e.GetSort().Kind() != RealSort && e.GetSort().Kind() != IntSort {
			t.Fatalf("subresultant %v has non-arithmetic sort %v", e, e.GetSort())
		}
	}
}

func TestPolynomialSubresultantsCrossContext(t *testing.T) {
	ctx1 := testContext(t)
	ctx2 := testContext(t)

	x := ctx1.MkRealConst("x")
	p := ctx1.MkMul(x, x)
	foreign := ctx2.MkRealConst("x")

	if _, err := ctx1.PolynomialSubresultants(p, foreign, x); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("subresultants across contexts: err = %v, want ErrCrossContext", err)
	}
}
