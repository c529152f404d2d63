package z3

import (
	"fmt"
	"iter"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// ASTVector is a growable container of expressions backed by a native AST
// vector. The vector holds native references to its elements, so an
// expression stored in a vector stays alive as long as the vector does.
type ASTVector struct {
	ctx *Context
	ptr uintptr
}

// wrapASTVector converts a native vector pointer into a reference-counted
// ASTVector. Like wrapExpr, the pending error code is inspected before the
// reference is acquired.
func wrapASTVector(ctx *Context, ptr uintptr, op string) (*ASTVector, error) {
	if err := ctx.check(op); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidHandle, op)
	}
	v := &ASTVector{ctx: ctx, ptr: ptr}
	ctx.refMu.Lock()
	native.ASTVectorIncRef(ctx.ptr, ptr)
	ctx.refMu.Unlock()
	runtime.SetFinalizer(v, func(v *ASTVector) {
		v.ctx.refMu.Lock()
		native.ASTVectorDecRef(v.ctx.ptr, v.ptr)
		v.ctx.refMu.Unlock()
	})
	return v, nil
}

// NewASTVector creates an empty AST vector.
func (c *Context) NewASTVector() (*ASTVector, error) {
	return wrapASTVector(c, native.MkASTVector(c.ptr), "mk_ast_vector")
}

// Len returns the number of elements in the vector. The length is read from
// the native object on every call, so it reflects mutations made through any
// handle to the same vector.
func (v *ASTVector) Len() int {
	n := int(native.ASTVectorSize(v.ctx.ptr, v.ptr))
	runtime.KeepAlive(v)
	return n
}

// Get returns the element at index i. Indices at or beyond the current
// length fail with ErrIndexOutOfRange.
func (v *ASTVector) Get(i int) (*Expr, error) {
	if i < 0 || i >= v.Len() {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.Len())
	}
	e, err := wrapExpr(v.ctx, native.ASTVectorGet(v.ctx.ptr, v.ptr, uint32(i)), "ast_vector_get")
	runtime.KeepAlive(v)
	return e, err
}

// Set replaces the element at index i. Indices at or beyond the current
// length fail with ErrIndexOutOfRange. Expressions from a different context
// fail with ErrCrossContext.
func (v *ASTVector) Set(i int, e *Expr) error {
	if e.ctx != v.ctx {
		return fmt.Errorf("%w (ast_vector_set)", ErrCrossContext)
	}
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.Len())
	}
	native.ASTVectorSet(v.ctx.ptr, v.ptr, uint32(i), e.ptr)
	err := v.ctx.check("ast_vector_set")
	runtime.KeepAlive(v)
	runtime.KeepAlive(e)
	return err
}

// Push appends an expression to the end of the vector. Expressions from a
// different context fail with ErrCrossContext.
func (v *ASTVector) Push(e *Expr) error {
	if e.ctx != v.ctx {
		return fmt.Errorf("%w (ast_vector_push)", ErrCrossContext)
	}
	native.ASTVectorPush(v.ctx.ptr, v.ptr, e.ptr)
	err := v.ctx.check("ast_vector_push")
	runtime.KeepAlive(v)
	runtime.KeepAlive(e)
	return err
}

// Resize changes the length of the vector to n. Shrinking drops the tail
// elements; indices removed this way fail subsequent Get calls.
func (v *ASTVector) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrIndexOutOfRange, n)
	}
	native.ASTVectorResize(v.ctx.ptr, v.ptr, uint32(n))
	err := v.ctx.check("ast_vector_resize")
	runtime.KeepAlive(v)
	return err
}

// Translate copies the vector and its elements into target, returning an
// equivalent vector valid in the target context. Translating into the
// originating context yields a vector whose elements equal the originals.
func (v *ASTVector) Translate(target *Context) (*ASTVector, error) {
	ptr := native.ASTVectorTranslate(v.ctx.ptr, v.ptr, target.ptr)
	out, err := wrapASTVector(target, ptr, "ast_vector_translate")
	runtime.KeepAlive(v)
	return out, err
}

// All returns an iterator over the elements of the vector in index order.
// The length is re-read each time iteration starts, so the iterator is
// restartable and sees mutations made between runs.
func (v *ASTVector) All() iter.Seq[*Expr] {
	return func(yield func(*Expr) bool) {
		for i := 0; i < v.Len(); i++ {
			e, err := v.Get(i)
			if err != nil {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ToSlice copies the elements of the vector into a Go slice.
func (v *ASTVector) ToSlice() ([]*Expr, error) {
	out := make([]*Expr, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		e, err := v.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// String returns the string representation of the vector.
func (v *ASTVector) String() string {
	s := native.ASTVectorToString(v.ctx.ptr, v.ptr)
	runtime.KeepAlive(v)
	return s
}
