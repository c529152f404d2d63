package z3

import (
	"fmt"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Fixedpoint represents a context for Horn clause and Datalog solving.
type Fixedpoint struct {
	ctx *Context
	ptr uintptr
}

// NewFixedpoint creates a fixedpoint solver.
func (c *Context) NewFixedpoint() *Fixedpoint {
	ptr := native.MkFixedpoint(c.ptr)
	fp := &Fixedpoint{ctx: c, ptr: ptr}
	c.refMu.Lock()
	native.FixedpointIncRef(c.ptr, ptr)
	c.refMu.Unlock()
	runtime.SetFinalizer(fp, func(fp *Fixedpoint) {
		fp.ctx.refMu.Lock()
		native.FixedpointDecRef(fp.ctx.ptr, fp.ptr)
		fp.ctx.refMu.Unlock()
	})
	return fp
}

// Assert adds a background constraint.
func (fp *Fixedpoint) Assert(e *Expr) error {
	if e.ctx != fp.ctx {
		return fmt.Errorf("%w (fixedpoint_assert)", ErrCrossContext)
	}
	native.FixedpointAssert(fp.ctx.ptr, fp.ptr, e.ptr)
	err := fp.ctx.check("fixedpoint_assert")
	runtime.KeepAlive(fp)
	runtime.KeepAlive(e)
	return err
}

// RegisterRelation registers a declaration as a recursively defined
// relation.
func (fp *Fixedpoint) RegisterRelation(decl *FuncDecl) error {
	native.FixedpointRegisterRelation(fp.ctx.ptr, fp.ptr, decl.ptr)
	err := fp.ctx.check("fixedpoint_register_relation")
	runtime.KeepAlive(fp)
	runtime.KeepAlive(decl)
	return err
}

// AddRule adds a named Horn rule. name may be nil.
func (fp *Fixedpoint) AddRule(rule *Expr, name *Symbol) error {
	namePtr := uintptr(0)
	if name != nil {
		namePtr = name.ptr
	}
	native.FixedpointAddRule(fp.ctx.ptr, fp.ptr, rule.ptr, namePtr)
	err := fp.ctx.check("fixedpoint_add_rule")
	runtime.KeepAlive(fp)
	runtime.KeepAlive(rule)
	return err
}

// AddFact adds a ground Datalog fact for a registered relation.
func (fp *Fixedpoint) AddFact(pred *FuncDecl, args ...uint) error {
	vals := make([]uint32, len(args))
	for i, a := range args {
		vals[i] = uint32(a)
	}
	var p *uint32
	if len(vals) > 0 {
		p = &vals[0]
	}
	native.FixedpointAddFact(fp.ctx.ptr, fp.ptr, pred.ptr, uint32(len(vals)), p)
	err := fp.ctx.check("fixedpoint_add_fact")
	runtime.KeepAlive(fp)
	runtime.KeepAlive(pred)
	return err
}

// Query checks whether the query formula is derivable from the rules.
func (fp *Fixedpoint) Query(query *Expr) Status {
	st := Status(native.FixedpointQuery(fp.ctx.ptr, fp.ptr, query.ptr))
	runtime.KeepAlive(fp)
	runtime.KeepAlive(query)
	return st
}

// Answer returns the answer formula of the last successful Query.
func (fp *Fixedpoint) Answer() (*Expr, error) {
	e, err := wrapExpr(fp.ctx, native.FixedpointGetAnswer(fp.ctx.ptr, fp.ptr), "fixedpoint_get_answer")
	runtime.KeepAlive(fp)
	return e, err
}

// ReasonUnknown explains why the last Query returned Unknown.
func (fp *Fixedpoint) ReasonUnknown() string {
	r := native.FixedpointReasonUnknown(fp.ctx.ptr, fp.ptr)
	runtime.KeepAlive(fp)
	return r
}

// FromString parses rules and queries in SMT-LIB2 or Datalog format,
// returning the queries found in the input.
func (fp *Fixedpoint) FromString(input string) (*ASTVector, error) {
	ptr := native.FixedpointFromString(fp.ctx.ptr, fp.ptr, input)
	v, err := wrapASTVector(fp.ctx, ptr, "fixedpoint_from_string")
	runtime.KeepAlive(fp)
	return v, err
}

// SetParams configures the fixedpoint engine with a parameter set.
func (fp *Fixedpoint) SetParams(p *Params) error {
	native.FixedpointSetParams(fp.ctx.ptr, fp.ptr, p.ptr)
	err := fp.ctx.check("fixedpoint_set_params")
	runtime.KeepAlive(fp)
	runtime.KeepAlive(p)
	return err
}

// Assertions returns the added background constraints.
func (fp *Fixedpoint) Assertions() (*ASTVector, error) {
	v, err := wrapASTVector(fp.ctx, native.FixedpointGetAssertions(fp.ctx.ptr, fp.ptr), "fixedpoint_get_assertions")
	runtime.KeepAlive(fp)
	return v, err
}

// Statistics returns fixedpoint performance counters.
func (fp *Fixedpoint) Statistics() *Statistics {
	st := wrapStatistics(fp.ctx, native.FixedpointGetStatistics(fp.ctx.ptr, fp.ptr))
	runtime.KeepAlive(fp)
	return st
}

// String returns the string representation of the rule set.
func (fp *Fixedpoint) String() string {
	s := native.FixedpointToString(fp.ctx.ptr, fp.ptr, 0, nil)
	runtime.KeepAlive(fp)
	return s
}

// Statistics holds named performance counters produced by a solver run.
type Statistics struct {
	ctx *Context
	ptr uintptr
}

func wrapStatistics(ctx *Context, ptr uintptr) *Statistics {
	st := &Statistics{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.StatsIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(st, func(st *Statistics) {
		st.ctx.refMu.Lock()
		native.StatsDecRef(st.ctx.ptr, st.ptr)
		st.ctx.refMu.Unlock()
	})
	return st
}

// Len returns the number of counters.
func (st *Statistics) Len() int {
	n := int(native.StatsSize(st.ctx.ptr, st.ptr))
	runtime.KeepAlive(st)
	return n
}

// Key returns the name of the i-th counter.
func (st *Statistics) Key(i int) string {
	k := native.StatsGetKey(st.ctx.ptr, st.ptr, uint32(i))
	runtime.KeepAlive(st)
	return k
}

// Uint returns the i-th counter as an unsigned value, if it is one.
func (st *Statistics) Uint(i int) (uint, bool) {
	if !native.StatsIsUint(st.ctx.ptr, st.ptr, uint32(i)) {
		return 0, false
	}
	v := uint(native.StatsGetUintValue(st.ctx.ptr, st.ptr, uint32(i)))
	runtime.KeepAlive(st)
	return v, true
}

// Float returns the i-th counter as a floating-point value, if it is one.
func (st *Statistics) Float(i int) (float64, bool) {
	if !native.StatsIsDouble(st.ctx.ptr, st.ptr, uint32(i)) {
		return 0, false
	}
	v := native.StatsGetDoubleValue(st.ctx.ptr, st.ptr, uint32(i))
	runtime.KeepAlive(st)
	return v, true
}

// String returns the string representation of the counters.
func (st *Statistics) String() string {
	s := native.StatsToString(st.ctx.ptr, st.ptr)
	runtime.KeepAlive(st)
	return s
}
