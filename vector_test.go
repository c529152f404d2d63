package z3

import (
	"errors"
	"testing"
)

func TestASTVectorPushGetResize(t *testing.T) {
	ctx := testContext(t)

	v, err := ctx.NewASTVector()
	if err != nil {
		t.Fatalf("NewASTVector: %v", err)
	}
	if v.Len() != 0 {
		t.Fatalf("new vector length = %d, want 0", v.Len())
	}

	intSort := ctx.MkIntSort()
	h0 := ctx.MkInt(0, intSort)
	h1 := ctx.MkInt(1, intSort)
	h2 := ctx.MkInt(2, intSort)
	for _, e := range []*Expr{h0, h1, h2} {
		if err := v.Push(e); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if v.Len() != 3 {
		t.Fatalf("length after 3 pushes = %d, want 3", v.Len())
	}

	got, err := v.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if !got.Equal(h1) {
		t.Fatalf("Get(1) = %v, want %v", got, h1)
	}

	if err := v.Resize(1); err != nil {
		t.Fatalf("Resize(1): %v", err)
	}
	if v.Len() != 1 {
		t.Fatalf("length after Resize(1) = %d, want 1", v.Len())
	}
	kept, err := v.Get(0)
	if err != nil {
		t.Fatalf("Get(0) after shrink: %v", err)
	}
	if !kept.Equal(h0) {
		t.Fatalf("Get(0) after shrink = %v, want %v", kept, h0)
	}
	if _, err := v.Get(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Get(1) after shrink: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestASTVectorEmptyGet(t *testing.T) {
	ctx := testContext(t)

	v, err := ctx.NewASTVector()
	if err != nil {
		t.Fatalf("NewASTVector: %v", err)
	}
	if _, err := v.Get(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Get(0) on empty vector: err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := v.Get(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Get(-1): err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestASTVectorSet(t *testing.T) {
	ctx := testContext(t)

	v, err := ctx.NewASTVector()
	if err != nil {
		t.Fatalf("NewASTVector: %v", err)
	}
	intSort := ctx.MkIntSort()
	if err := v.Push(ctx.MkInt(7, intSort)); err != nil {
		t.Fatalf("Push: %v", err)
	}

	repl := ctx.MkInt(42, intSort)
	if err := v.Set(0, repl); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	got, err := v.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if !got.Equal(repl) {
		t.Fatalf("Get(0) after Set = %v, want %v", got, repl)
	}

	if err := v.Set(1, repl); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Set(1) past end: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestASTVectorCrossContext(t *testing.T) {
	ctx1 := testContext(t)
	ctx2 := testContext(t)

	v, err := ctx1.NewASTVector()
	if err != nil {
		t.Fatalf("NewASTVector: %v", err)
	}
	foreign := ctx2.MkInt(1, ctx2.MkIntSort())
	if err := v.Push(foreign); !errors.Is(err, ErrCrossContext) {
		t.Fatalf("Push of foreign expr: err = %v, want ErrCrossContext", err)
	}
}

func TestASTVectorTranslate(t *testing.T) {
	ctx1 := testContext(t)
	ctx2 := testContext(t)

	v, err := ctx1.NewASTVector()
	if err != nil {
		t.Fatalf("NewASTVector: %v", err)
	}
	intSort := ctx1.MkIntSort()
	for i := 0; i < 3; i++ {
		if err := v.Push(ctx1.MkInt(i, intSort)); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	moved, err := v.Translate(ctx2)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if moved.Len() != v.Len() {
		t.Fatalf("translated length = %d, want %d", moved.Len(), v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		a, err := v.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		b, err := moved.Get(i)
		if err != nil {
			t.Fatalf("translated Get(%d): %v", i, err)
		}
		if a.String() != b.String() {
			t.Fatalf("element %d: %q != %q", i, a.String(), b.String())
		}
	}

	// Translating into the originating context yields equal elements.
	same, err := v.Translate(ctx1)
	if err != nil {
		t.Fatalf("Translate to own context: %v", err)
	}
	a0, _ := v.Get(0)
	b0, _ := same.Get(0)
	if !a0.Equal(b0) {
		t.Fatal("self-translation changed elements")
	}
}

func TestASTVectorIteration(t *testing.T) {
	ctx := testContext(t)

	v, err := ctx.NewASTVector()
	if err != nil {
		t.Fatalf("NewASTVector: %v", err)
	}
	intSort := ctx.MkIntSort()
	want := []*Expr{ctx.MkInt(10, intSort), ctx.MkInt(20, intSort)}
	for _, e := range want {
		if err := v.Push(e); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	i := 0
	for e := range v.All() {
		if !e.Equal(want[i]) {
			t.Fatalf("element %d = %v, want %v", i, e, want[i])
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("iterated %d elements, want %d", i, len(want))
	}

	// The iterator restarts from the beginning.
	j := 0
	for range v.All() {
		j++
	}
	if j != len(want) {
		t.Fatalf("second iteration saw %d elements, want %d", j, len(want))
	}

	s, err := v.ToSlice()
	if err != nil {
		t.Fatalf("ToSlice: %v", err)
	}
	if len(s) != len(want) {
		t.Fatalf("ToSlice length = %d, want %d", len(s), len(want))
	}
}
