// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// ExprGenerator is a non-recursive step function at a defunctionalized
// answer type (Expr-world).
type ExprGenerator[I, O any] func(self func(I) kont.Expr[O], x I) kont.Expr[O]

// FixExpr returns the fixed point of a defunctionalized generator
// (Expr-world). The resulting computations carry explicit frame chains and
// can be evaluated with kont.RunPure, kont.HandleExpr, or stepped with
// kont.StepExpr.
func FixExpr[I, O any](g ExprGenerator[I, O]) func(I) kont.Expr[O] {
	h := MakeHandle(func(self Handle[I, kont.Expr[O]], x I) kont.Expr[O] {
		return g(func(a I) kont.Expr[O] { return Apply(self, a) }, x)
	})
	return func(x I) kont.Expr[O] { return Apply(h, x) }
}

// IterateExpr runs a tail-recursive computation (Expr-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Expressed through [FixExpr], mirroring [Iterate].
func IterateExpr[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	loop := FixExpr(func(self func(S) kont.Expr[A], s S) kont.Expr[A] {
		return kont.ExprBind(step(s), func(e kont.Either[S, A]) kont.Expr[A] {
			if left, ok := e.GetLeft(); ok {
				return self(left)
			}
			right, _ := e.GetRight()
			return kont.ExprReturn(right)
		})
	})
	return loop(initial)
}
