package z3

import (
	"fmt"
	"runtime"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// PolynomialSubresultants returns the nonzero subresultants of p and q with
// respect to the variable x, ordered by decreasing degree. p and q are
// arithmetic terms over the same context; x is the variable the resultant
// chain eliminates.
func (c *Context) PolynomialSubresultants(p, q, x *Expr) (*ASTVector, error) {
	for _, e := range []*Expr{p, q, x} {
		if e.ctx != c {
			return nil, fmt.Errorf("%w (polynomial_subresultants)", ErrCrossContext)
		}
	}
	ptr := native.PolynomialSubresultants(c.ptr, p.ptr, q.ptr, x.ptr)
	out, err := wrapASTVector(c, ptr, "polynomial_subresultants")
	runtime.KeepAlive(p)
	runtime.KeepAlive(q)
	runtime.KeepAlive(x)
	return out, err
}
