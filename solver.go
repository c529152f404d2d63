package z3

import (
	"fmt"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Status represents the result of a satisfiability check.
type Status int

const (
	// Unsatisfiable means the asserted constraints have no model.
	Unsatisfiable Status = -1
	// Unknown means the solver could not determine satisfiability.
	Unknown Status = 0
	// Satisfiable means the asserted constraints have a model.
	Satisfiable Status = 1
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case Unsatisfiable:
		return "unsat"
	case Satisfiable:
		return "sat"
	default:
		return "unknown"
	}
}

// Solver represents a Z3 solver.
type Solver struct {
	ctx *Context
	ptr uintptr
}

func wrapSolver(ctx *Context, ptr uintptr, op string) *Solver {
	if err := ctx.check(op); err != nil {
		panic(err)
	}
	if ptr == 0 {
		panic(fmt.Errorf("%w (%s)", ErrInvalidHandle, op))
	}
	s := &Solver{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.SolverIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(s, func(s *Solver) {
		s.ctx.refMu.Lock()
		native.SolverDecRef(s.ctx.ptr, s.ptr)
		s.ctx.refMu.Unlock()
	})
	return s
}

// NewSolver creates a general-purpose solver.
func (c *Context) NewSolver() *Solver {
	return wrapSolver(c, native.MkSolver(c.ptr), "mk_solver")
}

// NewSimpleSolver creates an incremental solver without preprocessing.
func (c *Context) NewSimpleSolver() *Solver {
	return wrapSolver(c, native.MkSimpleSolver(c.ptr), "mk_simple_solver")
}

// NewSolverForLogic creates a solver specialized for the given logic, for
// example "QF_LIA".
func (c *Context) NewSolverForLogic(logic string) *Solver {
	sym := c.MkStringSymbol(logic)
	return wrapSolver(c, native.MkSolverForLogic(c.ptr, sym.ptr), "mk_solver_for_logic")
}

// Assert adds a constraint to the solver. Non-Boolean terms are rejected by
// the native layer and reported here.
func (s *Solver) Assert(e *Expr) error {
	if e.ctx != s.ctx {
		return fmt.Errorf("%w (solver_assert)", ErrCrossContext)
	}
	native.SolverAssert(s.ctx.ptr, s.ptr, e.ptr)
	err := s.ctx.check("solver_assert")
	runtime.KeepAlive(s)
	runtime.KeepAlive(e)
	return err
}

// AssertAndTrack adds a constraint associated with a tracking literal, for
// unsat core extraction.
func (s *Solver) AssertAndTrack(e, track *Expr) error {
	if e.ctx != s.ctx || track.ctx != s.ctx {
		return fmt.Errorf("%w (solver_assert_and_track)", ErrCrossContext)
	}
	native.SolverAssertAndTrack(s.ctx.ptr, s.ptr, e.ptr, track.ptr)
	err := s.ctx.check("solver_assert_and_track")
	runtime.KeepAlive(s)
	runtime.KeepAlive(e)
	runtime.KeepAlive(track)
	return err
}

// Check determines the satisfiability of the asserted constraints.
func (s *Solver) Check() Status {
	st := Status(native.SolverCheck(s.ctx.ptr, s.ptr))
	runtime.KeepAlive(s)
	return st
}

// CheckAssumptions checks satisfiability under the given extra assumptions.
func (s *Solver) CheckAssumptions(assumptions ...*Expr) Status {
	ptrs := astPtrs(assumptions)
	var p *uintptr
	if len(ptrs) > 0 {
		p = &ptrs[0]
	}
	st := Status(native.SolverCheckAssumps(s.ctx.ptr, s.ptr, uint32(len(ptrs)), p))
	runtime.KeepAlive(s)
	runtime.KeepAlive(assumptions)
	return st
}

// Model returns the model from the last successful Check. Call only after
// Check returned Satisfiable.
func (s *Solver) Model() (*Model, error) {
	m, err := wrapModel(s.ctx, native.SolverGetModel(s.ctx.ptr, s.ptr), "solver_get_model")
	runtime.KeepAlive(s)
	return m, err
}

// Push saves the current assertion stack state.
func (s *Solver) Push() error {
	native.SolverPush(s.ctx.ptr, s.ptr)
	err := s.ctx.check("solver_push")
	runtime.KeepAlive(s)
	return err
}

// Pop restores n saved states. Popping more scopes than Push created is
// reported by the native layer.
func (s *Solver) Pop(n int) error {
	native.SolverPop(s.ctx.ptr, s.ptr, uint32(n))
	err := s.ctx.check("solver_pop")
	runtime.KeepAlive(s)
	return err
}

// Reset removes all assertions.
func (s *Solver) Reset() {
	native.SolverReset(s.ctx.ptr, s.ptr)
	runtime.KeepAlive(s)
}

// NumScopes returns the number of active Push scopes.
func (s *Solver) NumScopes() int {
	n := int(native.SolverGetNumScopes(s.ctx.ptr, s.ptr))
	runtime.KeepAlive(s)
	return n
}

// Assertions returns the set of asserted formulas.
func (s *Solver) Assertions() (*ASTVector, error) {
	v, err := wrapASTVector(s.ctx, native.SolverGetAssertions(s.ctx.ptr, s.ptr), "solver_get_assertions")
	runtime.KeepAlive(s)
	return v, err
}

// UnsatCore returns the unsat core of the last Check, a subset of the
// assumptions and tracking literals sufficient for unsatisfiability.
func (s *Solver) UnsatCore() (*ASTVector, error) {
	v, err := wrapASTVector(s.ctx, native.SolverGetUnsatCore(s.ctx.ptr, s.ptr), "solver_get_unsat_core")
	runtime.KeepAlive(s)
	return v, err
}

// ReasonUnknown explains why the last Check returned Unknown.
func (s *Solver) ReasonUnknown() string {
	r := native.SolverReasonUnknown(s.ctx.ptr, s.ptr)
	runtime.KeepAlive(s)
	return r
}

// Statistics returns solver performance counters.
func (s *Solver) Statistics() *Statistics {
	st := wrapStatistics(s.ctx, native.SolverGetStatistics(s.ctx.ptr, s.ptr))
	runtime.KeepAlive(s)
	return st
}

// FromString parses SMT-LIB2 input and asserts the formulas it contains.
func (s *Solver) FromString(input string) error {
	native.SolverFromString(s.ctx.ptr, s.ptr, input)
	err := s.ctx.check("solver_from_string")
	runtime.KeepAlive(s)
	return err
}

// SetParams configures the solver with a parameter set. Unknown or
// ill-typed parameters are reported by the native layer.
func (s *Solver) SetParams(p *Params) error {
	native.SolverSetParams(s.ctx.ptr, s.ptr, p.ptr)
	err := s.ctx.check("solver_set_params")
	runtime.KeepAlive(s)
	runtime.KeepAlive(p)
	return err
}

// Interrupt cancels a Check running on another goroutine. This is the only
// solver operation safe to call concurrently.
func (s *Solver) Interrupt() {
	native.SolverInterrupt(s.ctx.ptr, s.ptr)
	runtime.KeepAlive(s)
}

// String returns the string representation of the solver state.
func (s *Solver) String() string {
	str := native.SolverToString(s.ctx.ptr, s.ptr)
	runtime.KeepAlive(s)
	return str
}

// Model represents a satisfying assignment.
type Model struct {
	ctx *Context
	ptr uintptr
}

func wrapModel(ctx *Context, ptr uintptr, op string) (*Model, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	m := &Model{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.ModelIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(m, func(m *Model) {
		m.ctx.refMu.Lock()
		native.ModelDecRef(m.ctx.ptr, m.ptr)
		m.ctx.refMu.Unlock()
	})
	return m, nil
}

// Eval evaluates an expression in the model. With completion, free constants
// without an interpretation get an arbitrary one.
func (m *Model) Eval(e *Expr, completion bool) (*Expr, error) {
	var out uintptr
	ok := native.ModelEval(m.ctx.ptr, m.ptr, e.ptr, completion, &out)
	if !ok {
		if err := m.ctx.check("model_eval"); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w (model_eval)", ErrInvalidHandle)
	}
	res, err := wrapExpr(m.ctx, out, "model_eval")
	runtime.KeepAlive(m)
	runtime.KeepAlive(e)
	return res, err
}

// NumConsts returns the number of constant interpretations in the model.
func (m *Model) NumConsts() int {
	n := int(native.ModelGetNumConsts(m.ctx.ptr, m.ptr))
	runtime.KeepAlive(m)
	return n
}

// NumFuncs returns the number of function interpretations in the model.
func (m *Model) NumFuncs() int {
	n := int(native.ModelGetNumFuncs(m.ctx.ptr, m.ptr))
	runtime.KeepAlive(m)
	return n
}

// ConstDecl returns the declaration of the i-th constant in the model.
func (m *Model) ConstDecl(i int) (*FuncDecl, error) {
	fd, err := wrapFuncDecl(m.ctx, native.ModelGetConstDecl(m.ctx.ptr, m.ptr, uint32(i)), "model_get_const_decl")
	runtime.KeepAlive(m)
	return fd, err
}

// FuncDeclAt returns the declaration of the i-th function in the model.
func (m *Model) FuncDeclAt(i int) (*FuncDecl, error) {
	fd, err := wrapFuncDecl(m.ctx, native.ModelGetFuncDecl(m.ctx.ptr, m.ptr, uint32(i)), "model_get_func_decl")
	runtime.KeepAlive(m)
	return fd, err
}

// ConstInterp returns the interpretation of a constant declaration, or an
// error if the model assigns none.
func (m *Model) ConstInterp(decl *FuncDecl) (*Expr, error) {
	e, err := wrapExpr(m.ctx, native.ModelGetConstInterp(m.ctx.ptr, m.ptr, decl.ptr), "model_get_const_interp")
	runtime.KeepAlive(m)
	runtime.KeepAlive(decl)
	return e, err
}

// FuncInterp returns the interpretation of a function declaration.
func (m *Model) FuncInterp(decl *FuncDecl) (*FuncInterp, error) {
	ptr := native.ModelGetFuncInterp(m.ctx.ptr, m.ptr, decl.ptr)
	fi, err := wrapFuncInterp(m.ctx, ptr, "model_get_func_interp")
	runtime.KeepAlive(m)
	runtime.KeepAlive(decl)
	return fi, err
}

// String returns the string representation of the model.
func (m *Model) String() string {
	s := native.ModelToString(m.ctx.ptr, m.ptr)
	runtime.KeepAlive(m)
	return s
}

// FuncInterp represents the interpretation of a function in a model, a
// finite map plus an else value.
type FuncInterp struct {
	ctx *Context
	ptr uintptr
}

func wrapFuncInterp(ctx *Context, ptr uintptr, op string) (*FuncInterp, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	fi := &FuncInterp{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.FuncInterpIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(fi, func(fi *FuncInterp) {
		fi.ctx.refMu.Lock()
		native.FuncInterpDecRef(fi.ctx.ptr, fi.ptr)
		fi.ctx.refMu.Unlock()
	})
	return fi, nil
}

// NumEntries returns the number of finite map entries.
func (fi *FuncInterp) NumEntries() int {
	n := int(native.FuncInterpGetNumEntries(fi.ctx.ptr, fi.ptr))
	runtime.KeepAlive(fi)
	return n
}

// Else returns the default value of the interpretation.
func (fi *FuncInterp) Else() (*Expr, error) {
	e, err := wrapExpr(fi.ctx, native.FuncInterpGetElse(fi.ctx.ptr, fi.ptr), "func_interp_get_else")
	runtime.KeepAlive(fi)
	return e, err
}

// Arity returns the arity of the interpreted function.
func (fi *FuncInterp) Arity() int {
	n := int(native.FuncInterpGetArity(fi.ctx.ptr, fi.ptr))
	runtime.KeepAlive(fi)
	return n
}
