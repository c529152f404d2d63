package z3

import (
	"fmt"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Tactic represents a goal transformation strategy.
type Tactic struct {
	ctx *Context
	ptr uintptr
}

func wrapTactic(ctx *Context, ptr uintptr, op string) (*Tactic, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	t := &Tactic{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.TacticIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(t, func(t *Tactic) {
		t.ctx.refMu.Lock()
		native.TacticDecRef(t.ctx.ptr, t.ptr)
		t.ctx.refMu.Unlock()
	})
	return t, nil
}

// MkTactic creates a tactic by name, for example "simplify" or "qe".
// Unknown names are reported by the native layer.
func (c *Context) MkTactic(name string) (*Tactic, error) {
	return wrapTactic(c, native.MkTactic(c.ptr, name), "mk_tactic")
}

// AndThen composes two tactics sequentially.
func (t *Tactic) AndThen(other *Tactic) (*Tactic, error) {
	out, err := wrapTactic(t.ctx, native.TacticAndThen(t.ctx.ptr, t.ptr, other.ptr), "tactic_and_then")
	runtime.KeepAlive(t)
	runtime.KeepAlive(other)
	return out, err
}

// OrElse tries t and falls back to other on failure.
func (t *Tactic) OrElse(other *Tactic) (*Tactic, error) {
	out, err := wrapTactic(t.ctx, native.TacticOrElse(t.ctx.ptr, t.ptr, other.ptr), "tactic_or_else")
	runtime.KeepAlive(t)
	runtime.KeepAlive(other)
	return out, err
}

// Repeat applies t up to max times, until it makes no progress.
func (t *Tactic) Repeat(max int) (*Tactic, error) {
	out, err := wrapTactic(t.ctx, native.TacticRepeat(t.ctx.ptr, t.ptr, uint32(max)), "tactic_repeat")
	runtime.KeepAlive(t)
	return out, err
}

// Help returns the tactic's parameter documentation.
func (t *Tactic) Help() string {
	h := native.TacticGetHelp(t.ctx.ptr, t.ptr)
	runtime.KeepAlive(t)
	return h
}

// Apply runs the tactic on a goal.
func (t *Tactic) Apply(g *Goal) (*ApplyResult, error) {
	if g.ctx != t.ctx {
		return nil, fmt.Errorf("%w (tactic_apply)", ErrCrossContext)
	}
	out, err := wrapApplyResult(t.ctx, native.TacticApply(t.ctx.ptr, t.ptr, g.ptr), "tactic_apply")
	runtime.KeepAlive(t)
	runtime.KeepAlive(g)
	return out, err
}

// Goal represents a set of formulas to be transformed by tactics.
type Goal struct {
	ctx *Context
	ptr uintptr
}

func wrapGoal(ctx *Context, ptr uintptr, op string) (*Goal, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	g := &Goal{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.GoalIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(g, func(g *Goal) {
		g.ctx.refMu.Lock()
		native.GoalDecRef(g.ctx.ptr, g.ptr)
		g.ctx.refMu.Unlock()
	})
	return g, nil
}

// MkGoal creates an empty goal. The flags control whether model conversion,
// unsat core tracking and proof generation are enabled for it.
func (c *Context) MkGoal(models, unsatCores, proofs bool) (*Goal, error) {
	return wrapGoal(c, native.MkGoal(c.ptr, models, unsatCores, proofs), "mk_goal")
}

// Assert adds a formula to the goal.
func (g *Goal) Assert(e *Expr) error {
	if e.ctx != g.ctx {
		return fmt.Errorf("%w (goal_assert)", ErrCrossContext)
	}
	native.GoalAssert(g.ctx.ptr, g.ptr, e.ptr)
	err := g.ctx.check("goal_assert")
	runtime.KeepAlive(g)
	runtime.KeepAlive(e)
	return err
}

// Size returns the number of formulas in the goal.
func (g *Goal) Size() int {
	n := int(native.GoalSize(g.ctx.ptr, g.ptr))
	runtime.KeepAlive(g)
	return n
}

// Formula returns the i-th formula in the goal.
func (g *Goal) Formula(i int) (*Expr, error) {
	if i < 0 || i >= g.Size() {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, g.Size())
	}
	e, err := wrapExpr(g.ctx, native.GoalFormula(g.ctx.ptr, g.ptr, uint32(i)), "goal_formula")
	runtime.KeepAlive(g)
	return e, err
}

// Reset removes all formulas from the goal.
func (g *Goal) Reset() {
	native.GoalReset(g.ctx.ptr, g.ptr)
	runtime.KeepAlive(g)
}

// String returns the string representation of the goal.
func (g *Goal) String() string {
	s := native.GoalToString(g.ctx.ptr, g.ptr)
	runtime.KeepAlive(g)
	return s
}

// ApplyResult represents the subgoals produced by applying a tactic.
type ApplyResult struct {
	ctx *Context
	ptr uintptr
}

func wrapApplyResult(ctx *Context, ptr uintptr, op string) (*ApplyResult, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	r := &ApplyResult{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.ApplyResultIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(r, func(r *ApplyResult) {
		r.ctx.refMu.Lock()
		native.ApplyResultDecRef(r.ctx.ptr, r.ptr)
		r.ctx.refMu.Unlock()
	})
	return r, nil
}

// NumSubgoals returns the number of subgoals in the result.
func (r *ApplyResult) NumSubgoals() int {
	n := int(native.ApplyResultGetNumSubgoals(r.ctx.ptr, r.ptr))
	runtime.KeepAlive(r)
	return n
}

// Subgoal returns the i-th subgoal.
func (r *ApplyResult) Subgoal(i int) (*Goal, error) {
	if i < 0 || i >= r.NumSubgoals() {
		return nil, fmt.Errorf("%w: index %d, subgoals %d", ErrIndexOutOfRange, i, r.NumSubgoals())
	}
	g, err := wrapGoal(r.ctx, native.ApplyResultGetSubgoal(r.ctx.ptr, r.ptr, uint32(i)), "apply_result_get_subgoal")
	runtime.KeepAlive(r)
	return g, err
}

// String returns the string representation of the result.
func (r *ApplyResult) String() string {
	s := native.ApplyResultToString(r.ctx.ptr, r.ptr)
	runtime.KeepAlive(r)
	return s
}

// Params represents a set of parameters for solvers, tactics and other
// configurable objects.
type Params struct {
	ctx *Context
	ptr uintptr
}

// MkParams creates an empty parameter set.
func (c *Context) MkParams() *Params {
	ptr := native.MkParams(c.ptr)
	p := &Params{ctx: c, ptr: ptr}
	c.refMu.Lock()
	native.ParamsIncRef(c.ptr, ptr)
	c.refMu.Unlock()
	runtime.SetFinalizer(p, func(p *Params) {
		p.ctx.refMu.Lock()
		native.ParamsDecRef(p.ctx.ptr, p.ptr)
		p.ctx.refMu.Unlock()
	})
	return p
}

// SetBool sets a Boolean parameter.
func (p *Params) SetBool(name string, value bool) {
	sym := p.ctx.MkStringSymbol(name)
	native.ParamsSetBool(p.ctx.ptr, p.ptr, sym.ptr, value)
	runtime.KeepAlive(p)
}

// SetUint sets an unsigned integer parameter.
func (p *Params) SetUint(name string, value uint) {
	sym := p.ctx.MkStringSymbol(name)
	native.ParamsSetUint(p.ctx.ptr, p.ptr, sym.ptr, uint32(value))
	runtime.KeepAlive(p)
}

// SetFloat sets a floating-point parameter.
func (p *Params) SetFloat(name string, value float64) {
	sym := p.ctx.MkStringSymbol(name)
	native.ParamsSetDouble(p.ctx.ptr, p.ptr, sym.ptr, value)
	runtime.KeepAlive(p)
}

// SetString sets a symbol-valued parameter.
func (p *Params) SetString(name, value string) {
	sym := p.ctx.MkStringSymbol(name)
	val := p.ctx.MkStringSymbol(value)
	native.ParamsSetSymbol(p.ctx.ptr, p.ptr, sym.ptr, val.ptr)
	runtime.KeepAlive(p)
}

// String returns the string representation of the parameter set.
func (p *Params) String() string {
	s := native.ParamsToString(p.ctx.ptr, p.ptr)
	runtime.KeepAlive(p)
	return s
}
