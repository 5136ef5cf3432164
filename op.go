// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// Recur is the effect operation for one self-application of the fixed point:
// "call the recursive version of this body with Arg". Bodies written with
// [Self] or [ExprSelf] stay non-recursive; a runner interprets the operation.
type Recur[I, O any] struct {
	kont.Phantom[O]
	Arg I
}

// Body is an open-recursive step function (Cont-world). Recursive calls are
// expressed as [Recur] effects via [Self]; the body never refers to itself
// by name.
type Body[I, O any] func(I) kont.Eff[O]

// ExprBody is an open-recursive step function (Expr-world).
type ExprBody[I, O any] func(I) kont.Expr[O]

// Self performs a recursive call as an effect (Cont-world).
// Perform(Recur[I, O]{Arg: arg}) suspends until a runner resolves it.
func Self[I, O any](arg I) kont.Eff[O] {
	return kont.Perform(Recur[I, O]{Arg: arg})
}

// ExprSelf performs a recursive call as an effect (Expr-world).
func ExprSelf[I, O any](arg I) kont.Expr[O] {
	return kont.ExprPerform(Recur[I, O]{Arg: arg})
}
