package z3

import (
	"testing"
)

func TestQELite(t *testing.T) {
	ctx := testContext(t)

	x := ctx.MkIntConst("x")
	y := ctx.MkIntConst("y")

	vars, err := ctx.NewASTVector()
	if err != nil {
		t.Fatalf("NewASTVector: %v", err)
	}
	if err := vars.Push(x); err != nil {
		t.Fatalf("Push: %v", err)
	}

	// exists x. x == y && x > 0  simplifies to a constraint on y only.
	body := ctx.MkAnd(ctx.MkEq(x, y), ctx.MkGt(x, ctx.MkInt(0, ctx.MkIntSort())))
	out, err := ctx.QELite(vars, body)
	if err != nil {
		t.Fatalf("QELite: %v", err)
	}

	// The result must be equisatisfiable with the original.
	solver := ctx.NewSolver()
	assertAll(t, solver, ctx.MkNot(ctx.MkIff(ctx.MkExists([]*Expr{x}, body), out)))
	if st := solver.Check(); st != Unsatisfiable {
		t.Fatalf("elimination result not equivalent: %v", st)
	}
}

func TestQEModelProject(t *testing.T) {
	ctx := testContext(t)

	x := ctx.MkIntConst("x")
	y := ctx.MkIntConst("y")
	body := ctx.MkAnd(ctx.MkLt(x, y), ctx.MkGt(x, ctx.MkInt(0, ctx.MkIntSort())))

	solver := ctx.NewSolver()
	assertAll(t, solver, body)
	if st := solver.Check(); st != Satisfiable {
		t.Fatalf("Check = %v, want sat", st)
	}
	model, err := solver.Model()
	if err != nil {
		t.Fatalf("Model: %v", err)
	}

	projected, err := ctx.QEModelProject(model, []*Expr{x}, body)
	if err != nil {
		t.Fatalf("QEModelProject: %v", err)
	}

	// The projection must not mention x and must hold in the model.
	val, err := model.Eval(projected, true)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !val.Equal(ctx.MkTrue()) {
		t.Fatalf("projection %v evaluates to %v in the model", projected, val)
	}
}

func TestEliminateQuantifiers(t *testing.T) {
	ctx := testContext(t)

	x := ctx.MkIntConst("x")
	y := ctx.MkIntConst("y")

	// exists x. y == 2*x  (y is even)
	q := ctx.MkExists([]*Expr{x},
		ctx.MkEq(y, ctx.MkMul(ctx.MkInt(2, ctx.MkIntSort()), x)))

	out, err := ctx.EliminateQuantifiers(q)
	if err != nil {
		t.Fatalf("EliminateQuantifiers: %v", err)
	}
	if out.IsQuantifierExists() || out.IsQuantifierForall() {
		t.Fatalf("result still quantified: %v", out)
	}

	solver := ctx.NewSolver()
	assertAll(t, solver, ctx.MkNot(ctx.MkIff(q, out)))
	if st := solver.Check(); st != Unsatisfiable {
		t.Fatalf("elimination result not equivalent: %v", st)
	}
}
