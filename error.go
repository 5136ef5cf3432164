// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// recurErrorHandler handles both recursion and error effects.
// Recur ops re-enter the body via recurse; error ops short-circuit on Throw.
// A Left produced at any depth propagates through every enclosing level.
type recurErrorHandler[E, I, O any] struct {
	recurse func(I) kont.Either[E, O]
	errCtx  *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Recur+Error handler.
// Dispatch order: Recur → Error.
func (h recurErrorHandler[E, I, O]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if rop, ok := op.(Recur[I, O]); ok {
		nested := h.recurse(rop.Arg)
		if left, ok := nested.GetLeft(); ok {
			return kont.Left[E, O](left), false
		}
		right, _ := nested.GetRight()
		return right, true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, O](h.errCtx.Err), false
		}
		return v, true
	}
	panic("fixp: unhandled effect in recurErrorHandler")
}

// ExecError runs an open-recursive body with error effects (Cont-world).
// Returns Either[E, O] — Right on success, Left when any recursion depth
// performs kont.ThrowError.
func ExecError[E, I, O any](body Body[I, O], x I) kont.Either[E, O] {
	wrapped := kont.Map[kont.Resumed, O, kont.Either[E, O]](body(x), func(r O) kont.Either[E, O] {
		return kont.Right[E, O](r)
	})
	var errCtx kont.ErrorContext[E]
	h := recurErrorHandler[E, I, O]{
		recurse: func(a I) kont.Either[E, O] { return ExecError[E](body, a) },
		errCtx:  &errCtx,
	}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an open-recursive body with error effects (Expr-world).
// Returns Either[E, O] — Right on success, Left when any recursion depth
// performs kont.ExprThrowError.
func ExecErrorExpr[E, I, O any](body ExprBody[I, O], x I) kont.Either[E, O] {
	wrapped := kont.ExprMap(body(x), func(r O) kont.Either[E, O] {
		return kont.Right[E, O](r)
	})
	var errCtx kont.ErrorContext[E]
	h := recurErrorHandler[E, I, O]{
		recurse: func(a I) kont.Either[E, O] { return ExecErrorExpr[E](body, a) },
		errCtx:  &errCtx,
	}
	return kont.HandleExpr(wrapped, h)
}
