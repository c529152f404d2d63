package z3

import (
	"errors"
	"testing"
)

func TestSolverBasic(t *testing.T) {
	ctx := testContext(t)
	solver := ctx.NewSolver()

	x := ctx.MkIntConst("x")
	y := ctx.MkIntConst("y")
	ten := ctx.MkInt(10, ctx.MkIntSort())

	assertAll(t, solver, ctx.MkEq(ctx.MkAdd(x, y), ten), ctx.MkGt(x, y))

	if st := solver.Check(); st != Satisfiable {
		t.Fatalf("Check = %v, want sat", st)
	}
	model, err := solver.Model()
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	sum, err := model.Eval(ctx.MkAdd(x, y), true)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !sum.Equal(ten) {
		t.Fatalf("x + y = %v in model, want 10", sum)
	}
}

func TestSolverPushPop(t *testing.T) {
	ctx := testContext(t)
	solver := ctx.NewSolver()

	p := ctx.MkBoolConst("p")
	assertAll(t, solver, p)

	if err := solver.Push(); err != nil {
		t.Fatalf("Push: %v", err)
	}
	assertAll(t, solver, ctx.MkNot(p))
	if st := solver.Check(); st != Unsatisfiable {
		t.Fatalf("Check with contradiction = %v, want unsat", st)
	}
	if n := solver.NumScopes(); n != 1 {
		t.Fatalf("NumScopes = %d, want 1", n)
	}

	if err := solver.Pop(1); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if st := solver.Check(); st != Satisfiable {
		t.Fatalf("Check after Pop = %v, want sat", st)
	}
	if err := solver.Pop(5); err == nil {
		t.Fatal("Pop past the bottom of the scope stack succeeded")
	}

	asserts, err := solver.Assertions()
	if err != nil {
		t.Fatalf("Assertions: %v", err)
	}
	if asserts.Len() != 1 {
		t.Fatalf("%d assertions after Pop, want 1", asserts.Len())
	}
}

// A non-Boolean assertion must surface the native failure instead of being
// silently dropped.
func TestSolverAssertNonBoolean(t *testing.T) {
	ctx := testContext(t)
	solver := ctx.NewSolver()

	if err := solver.Assert(ctx.MkInt(5, ctx.MkIntSort())); err == nil {
		t.Fatal("Assert accepted a non-Boolean term")
	}

	asserts, err := solver.Assertions()
	if err != nil {
		t.Fatalf("Assertions: %v", err)
	}
	if asserts.Len() != 0 {
		t.Fatalf("%d assertions recorded after failed Assert, want 0", asserts.Len())
	}
}

func TestSolverAssertCrossContext(t *testing.T) {
	ctx1 := testContext(t)
	ctx2 := testContext(t)
	solver := ctx1.NewSolver()

	if err := solver.Assert(ctx2.MkBoolConst("p")); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("Assert of foreign expr: err = %v, want ErrCrossContext", err)
	}
}

func TestSolverUnsatCore(t *testing.T) {
	ctx := testContext(t)
	solver := ctx.NewSolver()

	p := ctx.MkBoolConst("p")
	t1 := ctx.MkBoolConst("t1")
	t2 := ctx.MkBoolConst("t2")
	if err := solver.AssertAndTrack(p, t1); err != nil {
		t.Fatalf("AssertAndTrack: %v", err)
	}
	if err := solver.AssertAndTrack(ctx.MkNot(p), t2); err != nil {
		t.Fatalf("AssertAndTrack: %v", err)
	}

	if st := solver.Check(); st != Unsatisfiable {
		t.Fatalf("Check = %v, want unsat", st)
	}
	core, err := solver.UnsatCore()
	if err != nil {
		t.Fatalf("UnsatCore: %v", err)
	}
	if core.Len() != 2 {
		t.Fatalf("core size = %d, want 2", core.Len())
	}
}

func TestSolverCheckAssumptions(t *testing.T) {
	ctx := testContext(t)
	solver := ctx.NewSolver()

	p := ctx.MkBoolConst("p")
	assertAll(t, solver, p)

	if st := solver.CheckAssumptions(ctx.MkNot(p)); st != Unsatisfiable {
		t.Fatalf("CheckAssumptions(!p) = %v, want unsat", st)
	}
	// Assumptions do not stick.
	if st := solver.Check(); st != Satisfiable {
		t.Fatalf("Check after assumptions = %v, want sat", st)
	}
}

func TestSolverFromString(t *testing.T) {
	ctx := testContext(t)
	solver := ctx.NewSolver()

	err := solver.FromString("(declare-const a Int)(assert (> a 5))")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if st := solver.Check(); st != Satisfiable {
		t.Fatalf("Check = %v, want sat", st)
	}

	if err := solver.FromString("(not smtlib"); err == nil {
		t.Fatal("FromString accepted malformed input")
	}
}

func TestTacticApply(t *testing.T) {
	ctx := testContext(t)

	tactic, err := ctx.MkTactic("simplify")
	if err != nil {
		t.Fatalf("MkTactic: %v", err)
	}
	goal, err := ctx.MkGoal(false, false, false)
	if err != nil {
		t.Fatalf("MkGoal: %v", err)
	}

	p := ctx.MkBoolConst("p")
	if err := goal.Assert(ctx.MkAnd(p, ctx.MkTrue())); err != nil {
		t.Fatalf("Assert: %v", err)
	}

	result, err := tactic.Apply(goal)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.NumSubgoals() != 1 {
		t.Fatalf("subgoals = %d, want 1", result.NumSubgoals())
	}
	sub, err := result.Subgoal(0)
	if err != nil {
		t.Fatalf("Subgoal: %v", err)
	}
	f, err := sub.Formula(0)
	if err != nil {
		t.Fatalf("Formula: %v", err)
	}
	if !f.Equal(p) {
		t.Fatalf("simplified formula = %v, want p", f)
	}
}

func TestMkTacticUnknownName(t *testing.T) {
	ctx := testContext(t)

	if _, err := ctx.MkTactic("no-such-tactic"); err == nil {
		t.Fatal("MkTactic accepted unknown tactic name")
	}
}

func TestSolverStatistics(t *testing.T) {
	ctx := testContext(t)
	solver := ctx.NewSolver()

	x := ctx.MkIntConst("x")
	assertAll(t, solver, ctx.MkGt(x, ctx.MkInt(0, ctx.MkIntSort())))
	solver.Check()

	stats := solver.Statistics()
	for i := 0; i < stats.Len(); i++ {
		if stats.Key(i) == "" {
			t.Fatalf("statistic %d has empty key", i)
		}
	}
}
