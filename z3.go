// Package z3 provides Go bindings for the Z3 theorem prover.
//
// Z3 is a high-performance SMT (Satisfiability Modulo Theories) solver
// developed at Microsoft Research. These bindings load libz3 at runtime
// through purego - no cgo is required - and expose idiomatic Go types with
// automatic memory management.
//
// # Loading
//
// The shared library is located and loaded on the first call to Init (or
// lazily by NewContext). Set Z3_LIBRARY_PATH to point at a non-standard
// libz3 location:
//
//	if err := z3.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Basic Usage
//
// Create a context and solver:
//
//	ctx, _ := z3.NewContext()
//	solver := ctx.NewSolver()
//
//	x := ctx.MkIntConst("x")
//	y := ctx.MkIntConst("y")
//	solver.Assert(ctx.MkEq(ctx.MkAdd(x, y), ctx.MkInt(10, ctx.MkIntSort())))
//	solver.Assert(ctx.MkGt(x, y))
//
//	if solver.Check() == z3.Satisfiable {
//	    model, _ := solver.Model()
//	    xVal, _ := model.Eval(x, true)
//	    fmt.Println("x =", xVal.String())
//	}
//
// # Memory Management
//
// Every wrapped Z3 object holds exactly one native reference, acquired when
// the Go value is created and released by its finalizer. Handles keep their
// owning Context reachable, so a context is never deleted while objects
// allocated from it are alive. The reference count bookkeeping is the only
// internally synchronized operation; everything else on a shared Context
// must be serialized by the caller, matching Z3's own threading contract.
//
// # Errors
//
// Operations that can fail return a typed error: the sentinels
// ErrInvalidHandle, ErrIndexOutOfRange, ErrSortMismatch and ErrCrossContext
// for conditions the wrapper detects itself, and *NativeError carrying the
// verbatim Z3 diagnostic for everything the native layer reports. The
// process-terminating default error handler of the C API is replaced on
// every context.
package z3

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Init locates and loads libz3 and registers all native entry points.
// It is safe to call multiple times. NewContext calls it implicitly.
func Init() error {
	return native.Load()
}

// Version returns the version string of the loaded libz3, or "" if the
// library has not been loaded yet.
func Version() string {
	if !native.IsLoaded() {
		return ""
	}
	var major, minor, build, revision uint32
	native.GetVersion(&major, &minor, &build, &revision)
	return fmt.Sprintf("%d.%d.%d.%d", major, minor, build, revision)
}

var (
	errHandlerOnce sync.Once
	errHandler     uintptr
)

// nopErrorHandler returns a native callback that swallows error
// notifications. Error codes are polled after each call instead; the handler
// only prevents Z3's default handler from terminating the process.
func nopErrorHandler() uintptr {
	errHandlerOnce.Do(func() {
		errHandler = purego.NewCallback(func(ctx uintptr, code int32) {})
	})
	return errHandler
}

// Config represents a Z3 configuration object.
type Config struct {
	ptr uintptr
}

// NewConfig creates a new Z3 configuration.
func NewConfig() (*Config, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cfg := &Config{ptr: native.MkConfig()}
	runtime.SetFinalizer(cfg, func(c *Config) {
		native.DelConfig(c.ptr)
	})
	return cfg, nil
}

// SetParamValue sets a configuration parameter.
func (c *Config) SetParamValue(paramID, paramValue string) {
	native.SetParamValue(c.ptr, paramID, paramValue)
}

// Context represents a Z3 logical context. All objects allocated from a
// context are only meaningful within it; use the Translate operations to
// move expressions between contexts.
type Context struct {
	ptr uintptr

	// refMu serializes native reference count increments and decrements.
	// Finalizers run concurrently with user code, and the inc/dec pair is
	// the one operation that must not race.
	refMu sync.Mutex
}

// NewContext creates a new Z3 context with default configuration, loading
// libz3 first if necessary.
func NewContext() (*Context, error) {
	return NewContextWithConfig(nil)
}

// NewContextWithConfig creates a new Z3 context with the given
// configuration. A nil cfg uses the defaults.
func NewContextWithConfig(cfg *Config) (*Context, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cfgPtr := uintptr(0)
	if cfg == nil {
		cfgPtr = native.MkConfig()
		defer native.DelConfig(cfgPtr)
	} else {
		cfgPtr = cfg.ptr
	}
	ptr := native.MkContextRC(cfgPtr)
	if ptr == 0 {
		return nil, ErrInvalidHandle
	}
	native.SetErrorHandler(ptr, nopErrorHandler())
	ctx := &Context{ptr: ptr}
	runtime.SetFinalizer(ctx, func(c *Context) {
		native.DelContext(c.ptr)
	})
	runtime.KeepAlive(cfg)
	return ctx, nil
}

// SetParam updates a context parameter.
func (c *Context) SetParam(key, value string) {
	native.UpdateParamValue(c.ptr, key, value)
}

// incAST acquires one native reference for an AST pointer.
func (c *Context) incAST(ptr uintptr) {
	c.refMu.Lock()
	native.IncRef(c.ptr, ptr)
	c.refMu.Unlock()
}

// decAST releases one native reference for an AST pointer.
func (c *Context) decAST(ptr uintptr) {
	c.refMu.Lock()
	native.DecRef(c.ptr, ptr)
	c.refMu.Unlock()
}

// Symbol represents a Z3 symbol. Symbols are not reference counted by the
// native layer.
type Symbol struct {
	ctx *Context
	ptr uintptr
}

// MkIntSymbol creates an integer symbol.
func (c *Context) MkIntSymbol(i int) *Symbol {
	return &Symbol{ctx: c, ptr: native.MkIntSymbol(c.ptr, int32(i))}
}

// MkStringSymbol creates a string symbol.
func (c *Context) MkStringSymbol(s string) *Symbol {
	return &Symbol{ctx: c, ptr: native.MkStringSymbol(c.ptr, s)}
}

// String returns the string representation of the symbol.
func (s *Symbol) String() string {
	const intSymbolKind = 0 // Z3_INT_SYMBOL
	if native.GetSymbolKind(s.ctx.ptr, s.ptr) == intSymbolKind {
		return fmt.Sprintf("%d", native.GetSymbolInt(s.ctx.ptr, s.ptr))
	}
	return native.GetSymbolString(s.ctx.ptr, s.ptr)
}

// Expr represents a Z3 expression (an AST node).
type Expr struct {
	ctx *Context
	ptr uintptr
}

// wrapExpr converts a native AST pointer into a reference-counted Expr.
// The pending native error code is inspected before the reference is
// acquired, so a failed call never leaves a reference behind.
func wrapExpr(ctx *Context, ptr uintptr, op string) (*Expr, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	e := &Expr{ctx: ctx, ptr: ptr}
	ctx.incAST(ptr)
	runtime.SetFinalizer(e, func(e *Expr) {
		e.ctx.decAST(e.ptr)
	})
	return e, nil
}

// mustExpr wraps construction surfaces that cannot fail on well-formed
// input. A pending native error still surfaces, as a panic carrying the
// typed error.
func mustExpr(ctx *Context, ptr uintptr, op string) *Expr {
	e, err := wrapExpr(ctx, ptr, op)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the string representation of the expression.
func (e *Expr) String() string {
	return native.ASTToString(e.ctx.ptr, e.ptr)
}

// Hash returns the hash code of the expression.
func (e *Expr) Hash() uint32 {
	return native.GetASTHash(e.ctx.ptr, e.ptr)
}

// Equal checks if two expressions are structurally identical.
func (e *Expr) Equal(other *Expr) bool {
	if e.ctx != other.ctx {
		return false
	}
	return native.IsEqAST(e.ctx.ptr, e.ptr, other.ptr)
}

// GetSort returns the sort of the expression.
func (e *Expr) GetSort() *Sort {
	return mustSort(e.ctx, native.GetSort(e.ctx.ptr, e.ptr), "get_sort")
}

// Simplify simplifies the expression.
func (e *Expr) Simplify() *Expr {
	return mustExpr(e.ctx, native.Simplify(e.ctx.ptr, e.ptr), "simplify")
}

// Translate copies the expression into target, returning an equivalent
// expression valid in the target context. Translating into the originating
// context returns an expression equal to the receiver.
func (e *Expr) Translate(target *Context) (*Expr, error) {
	ptr := native.Translate(e.ctx.ptr, e.ptr, target.ptr)
	out, err := wrapExpr(target, ptr, "translate")
	runtime.KeepAlive(e)
	return out, err
}

// Sort represents a Z3 sort (type).
type Sort struct {
	ctx *Context
	ptr uintptr
}

// wrapSort converts a native sort pointer into a reference-counted Sort.
// Sorts are ASTs in the C API.
func wrapSort(ctx *Context, ptr uintptr, op string) (*Sort, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	s := &Sort{ctx: ctx, ptr: ptr}
	ctx.incAST(native.SortToAST(ctx.ptr, ptr))
	runtime.SetFinalizer(s, func(s *Sort) {
		s.ctx.decAST(native.SortToAST(s.ctx.ptr, s.ptr))
	})
	return s, nil
}

func mustSort(ctx *Context, ptr uintptr, op string) *Sort {
	s, err := wrapSort(ctx, ptr, op)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the string representation of the sort.
func (s *Sort) String() string {
	return native.SortToString(s.ctx.ptr, s.ptr)
}

// Equal checks if two sorts are equal.
func (s *Sort) Equal(other *Sort) bool {
	if s.ctx != other.ctx {
		return false
	}
	return native.IsEqSort(s.ctx.ptr, s.ptr, other.ptr)
}

// Kind returns the native sort kind discriminator.
func (s *Sort) Kind() SortKind {
	return SortKind(native.GetSortKind(s.ctx.ptr, s.ptr))
}

// SortKind mirrors the native Z3_sort_kind values used by this package.
type SortKind uint32

const (
	UninterpretedSort SortKind = 0
	BoolSort          SortKind = 1
	IntSort           SortKind = 2
	RealSort          SortKind = 3
	BvSort            SortKind = 4
	FloatingPointSort SortKind = 9
	RoundingModeSort  SortKind = 10
)

// MkBoolSort creates the Boolean sort.
func (c *Context) MkBoolSort() *Sort {
	return mustSort(c, native.MkBoolSort(c.ptr), "mk_bool_sort")
}

// MkTrue creates the Boolean constant true.
func (c *Context) MkTrue() *Expr {
	return mustExpr(c, native.MkTrue(c.ptr), "mk_true")
}

// MkFalse creates the Boolean constant false.
func (c *Context) MkFalse() *Expr {
	return mustExpr(c, native.MkFalse(c.ptr), "mk_false")
}

// MkBool creates a Boolean constant.
func (c *Context) MkBool(value bool) *Expr {
	if value {
		return c.MkTrue()
	}
	return c.MkFalse()
}

// MkNumeral creates a numeral of the given sort from a string. Strings the
// native parser rejects are reported as an error.
func (c *Context) MkNumeral(numeral string, sort *Sort) (*Expr, error) {
	e, err := wrapExpr(c, native.MkNumeral(c.ptr, numeral, sort.ptr), "mk_numeral")
	runtime.KeepAlive(sort)
	return e, err
}

// MkConst creates a constant (variable) with the given name and sort.
func (c *Context) MkConst(name *Symbol, sort *Sort) *Expr {
	return mustExpr(c, native.MkConst(c.ptr, name.ptr, sort.ptr), "mk_const")
}

// MkBoolConst creates a Boolean constant (variable) with the given name.
func (c *Context) MkBoolConst(name string) *Expr {
	return c.MkConst(c.MkStringSymbol(name), c.MkBoolSort())
}

// astPtrs collects the native pointers of a slice of expressions.
func astPtrs(exprs []*Expr) []uintptr {
	out := make([]uintptr, len(exprs))
	for i, e := range exprs {
		out[i] = e.ptr
	}
	return out
}

// Boolean operations

// MkAnd creates a conjunction.
func (c *Context) MkAnd(exprs ...*Expr) *Expr {
	if len(exprs) == 0 {
		return c.MkTrue()
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	args := astPtrs(exprs)
	e := mustExpr(c, native.MkAnd(c.ptr, uint32(len(args)), &args[0]), "mk_and")
	runtime.KeepAlive(exprs)
	return e
}

// MkOr creates a disjunction.
func (c *Context) MkOr(exprs ...*Expr) *Expr {
	if len(exprs) == 0 {
		return c.MkFalse()
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	args := astPtrs(exprs)
	e := mustExpr(c, native.MkOr(c.ptr, uint32(len(args)), &args[0]), "mk_or")
	runtime.KeepAlive(exprs)
	return e
}

// MkNot creates a negation.
func (c *Context) MkNot(expr *Expr) *Expr {
	return mustExpr(c, native.MkNot(c.ptr, expr.ptr), "mk_not")
}

// MkImplies creates an implication.
func (c *Context) MkImplies(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkImplies(c.ptr, lhs.ptr, rhs.ptr), "mk_implies")
}

// MkIff creates a bi-implication (if and only if).
func (c *Context) MkIff(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkIff(c.ptr, lhs.ptr, rhs.ptr), "mk_iff")
}

// MkXor creates exclusive or.
func (c *Context) MkXor(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkXor(c.ptr, lhs.ptr, rhs.ptr), "mk_xor")
}

// MkIte creates an if-then-else term.
func (c *Context) MkIte(cond, t, e *Expr) *Expr {
	return mustExpr(c, native.MkIte(c.ptr, cond.ptr, t.ptr, e.ptr), "mk_ite")
}

// Comparison operations

// MkEq creates an equality.
func (c *Context) MkEq(lhs, rhs *Expr) *Expr {
	return mustExpr(c, native.MkEq(c.ptr, lhs.ptr, rhs.ptr), "mk_eq")
}

// MkDistinct creates a distinct constraint.
func (c *Context) MkDistinct(exprs ...*Expr) *Expr {
	if len(exprs) <= 1 {
		return c.MkTrue()
	}
	args := astPtrs(exprs)
	e := mustExpr(c, native.MkDistinct(c.ptr, uint32(len(args)), &args[0]), "mk_distinct")
	runtime.KeepAlive(exprs)
	return e
}

// FuncDecl represents a function declaration.
type FuncDecl struct {
	ctx *Context
	ptr uintptr
}

// wrapFuncDecl converts a native declaration pointer into a
// reference-counted FuncDecl.
func wrapFuncDecl(ctx *Context, ptr uintptr, op string) (*FuncDecl, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	fd := &FuncDecl{ctx: ctx, ptr: ptr}
	ctx.incAST(native.FuncDeclToAST(ctx.ptr, ptr))
	runtime.SetFinalizer(fd, func(f *FuncDecl) {
		f.ctx.decAST(native.FuncDeclToAST(f.ctx.ptr, f.ptr))
	})
	return fd, nil
}

func mustFuncDecl(ctx *Context, ptr uintptr, op string) *FuncDecl {
	fd, err := wrapFuncDecl(ctx, ptr, op)
	if err != nil {
		panic(err)
	}
	return fd
}

// String returns the string representation of the function declaration.
func (f *FuncDecl) String() string {
	return native.FuncDeclToString(f.ctx.ptr, f.ptr)
}

// GetName returns the name of the function declaration.
func (f *FuncDecl) GetName() *Symbol {
	return &Symbol{ctx: f.ctx, ptr: native.GetDeclName(f.ctx.ptr, f.ptr)}
}

// GetArity returns the number of parameters of the function.
func (f *FuncDecl) GetArity() int {
	return int(native.GetArity(f.ctx.ptr, f.ptr))
}

// GetDomain returns the sort of the i-th parameter.
func (f *FuncDecl) GetDomain(i int) *Sort {
	return mustSort(f.ctx, native.GetDomain(f.ctx.ptr, f.ptr, uint32(i)), "get_domain")
}

// GetRange returns the sort of the return value.
func (f *FuncDecl) GetRange() *Sort {
	return mustSort(f.ctx, native.GetRange(f.ctx.ptr, f.ptr), "get_range")
}

// MkFuncDecl creates a function declaration.
func (c *Context) MkFuncDecl(name *Symbol, domain []*Sort, range_ *Sort) *FuncDecl {
	sorts := make([]uintptr, len(domain))
	for i, s := range domain {
		sorts[i] = s.ptr
	}
	var domainPtr *uintptr
	if len(sorts) > 0 {
		domainPtr = &sorts[0]
	}
	fd := mustFuncDecl(c, native.MkFuncDecl(c.ptr, name.ptr, uint32(len(sorts)), domainPtr, range_.ptr), "mk_func_decl")
	runtime.KeepAlive(domain)
	return fd
}

// MkApp creates a function application.
func (c *Context) MkApp(decl *FuncDecl, args ...*Expr) *Expr {
	ptrs := astPtrs(args)
	var argsPtr *uintptr
	if len(ptrs) > 0 {
		argsPtr = &ptrs[0]
	}
	e := mustExpr(c, native.MkApp(c.ptr, decl.ptr, uint32(len(ptrs)), argsPtr), "mk_app")
	runtime.KeepAlive(args)
	runtime.KeepAlive(decl)
	return e
}

// Quantifier operations

// MkForall creates a universal quantifier over the given bound constants.
func (c *Context) MkForall(bound []*Expr, body *Expr) *Expr {
	// Constants are apps in the C API; the pointers pass through unchanged.
	ptrs := astPtrs(bound)
	var boundPtr *uintptr
	if len(ptrs) > 0 {
		boundPtr = &ptrs[0]
	}
	e := mustExpr(c, native.MkForallConst(c.ptr, 0, uint32(len(ptrs)), boundPtr, 0, nil, body.ptr), "mk_forall_const")
	runtime.KeepAlive(bound)
	return e
}

// MkExists creates an existential quantifier over the given bound constants.
func (c *Context) MkExists(bound []*Expr, body *Expr) *Expr {
	ptrs := astPtrs(bound)
	var boundPtr *uintptr
	if len(ptrs) > 0 {
		boundPtr = &ptrs[0]
	}
	e := mustExpr(c, native.MkExistsConst(c.ptr, 0, uint32(len(ptrs)), boundPtr, 0, nil, body.ptr), "mk_exists_const")
	runtime.KeepAlive(bound)
	return e
}

// IsQuantifierForall reports whether the expression is a universal
// quantifier.
func (e *Expr) IsQuantifierForall() bool {
	return native.IsQuantifierForall(e.ctx.ptr, e.ptr)
}

// IsQuantifierExists reports whether the expression is an existential
// quantifier.
func (e *Expr) IsQuantifierExists() bool {
	return native.IsQuantifierExists(e.ctx.ptr, e.ptr)
}

// QuantifierNumBound returns the number of bound variables of a quantifier
// expression.
func (e *Expr) QuantifierNumBound() int {
	return int(native.GetQuantifierNumBound(e.ctx.ptr, e.ptr))
}

// QuantifierBody returns the body of a quantifier expression.
func (e *Expr) QuantifierBody() *Expr {
	return mustExpr(e.ctx, native.GetQuantifierBody(e.ctx.ptr, e.ptr), "get_quantifier_body")
}
