// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// recurHandler implements kont.Handler for recursion effects.
// Each Recur is interpreted by recurse, which re-enters the body under a
// fresh handler: recursion flows through the handler, one nested trampoline
// per depth level. Depth remains unbounded.
type recurHandler[I, O any] struct {
	recurse func(I) O
}

// Dispatch implements kont.Handler via type assertion on Recur.
func (h recurHandler[I, O]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	rop, ok := op.(Recur[I, O])
	if !ok {
		panic("fixp: unhandled effect in recurHandler")
	}
	return h.recurse(rop.Arg), true
}

// Exec runs an open-recursive body (Cont-world) on x.
// Semantically equivalent to Fix over the body with self-calls resolved by
// effect interpretation instead of closure composition.
func Exec[I, O any](body Body[I, O], x I) O {
	h := recurHandler[I, O]{recurse: func(a I) O { return Exec(body, a) }}
	return kont.Handle(body(x), h)
}

// ExecExpr runs an open-recursive body (Expr-world) on x.
func ExecExpr[I, O any](body ExprBody[I, O], x I) O {
	h := recurHandler[I, O]{recurse: func(a I) O { return ExecExpr(body, a) }}
	return kont.HandleExpr(body(x), h)
}
