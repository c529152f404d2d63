package z3

import (
	"fmt"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Quantifier elimination

// QELite applies light-weight quantifier elimination to body, eliminating
// the variables in vars where possible. Variables that could not be
// eliminated remain in vars after the call; eliminated ones are removed.
func (c *Context) QELite(vars *ASTVector, body *Expr) (*Expr, error) {
	if vars.ctx != c || body.ctx != c {
		return nil, fmt.Errorf("%w (qe_lite)", ErrCrossContext)
	}
	ptr := native.QELite(c.ptr, vars.ptr, body.ptr)
	out, err := wrapExpr(c, ptr, "qe_lite")
	runtime.KeepAlive(vars)
	runtime.KeepAlive(body)
	return out, err
}

// QEModelProject projects the variables in vars out of body, using the model
// to select the projection. The result is implied by body under the model
// and contains none of the projected variables.
func (c *Context) QEModelProject(model *Model, vars []*Expr, body *Expr) (*Expr, error) {
	if model.ctx != c || body.ctx != c {
		return nil, fmt.Errorf("%w (qe_model_project)", ErrCrossContext)
	}
	for _, v := range vars {
		if v.ctx != c {
			return nil, fmt.Errorf("%w (qe_model_project)", ErrCrossContext)
		}
	}
	ptrs := astPtrs(vars)
	var varsPtr *uintptr
	if len(ptrs) > 0 {
		varsPtr = &ptrs[0]
	}
	ptr := native.QEModelProject(c.ptr, model.ptr, uint32(len(ptrs)), varsPtr, body.ptr)
	out, err := wrapExpr(c, ptr, "qe_model_project")
	runtime.KeepAlive(model)
	runtime.KeepAlive(vars)
	runtime.KeepAlive(body)
	return out, err
}

// EliminateQuantifiers runs the full quantifier elimination tactic on the
// expression and returns the conjunction of the resulting subgoal formulas.
func (c *Context) EliminateQuantifiers(e *Expr) (*Expr, error) {
	if e.ctx != c {
		return nil, fmt.Errorf("%w (eliminate_quantifiers)", ErrCrossContext)
	}
	tactic, err := c.MkTactic("qe")
	if err != nil {
		return nil, err
	}
	goal, err := c.MkGoal(false, false, false)
	if err != nil {
		return nil, err
	}
	if err := goal.Assert(e); err != nil {
		return nil, err
	}
	result, err := tactic.Apply(goal)
	if err != nil {
		return nil, err
	}
	var parts []*Expr
	for i := 0; i < result.NumSubgoals(); i++ {
		sub, err := result.Subgoal(i)
		if err != nil {
			return nil, err
		}
		for j := 0; j < sub.Size(); j++ {
			f, err := sub.Formula(j)
			if err != nil {
				return nil, err
			}
			parts = append(parts, f)
		}
	}
	return c.MkAnd(parts...), nil
}
