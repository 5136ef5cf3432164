// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is pre-allocated to eliminate heap escapes when boxing
// the empty ReturnFrame into kont.Frame during Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprSelfBind recurses on arg and passes the result to f.
// Fuses ExprPerform(Recur[I, O]{Arg: arg}) + ExprBind with pooled frames.
func ExprSelfBind[I, O, B any](arg I, f func(O) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		result := f(a.(O))
		return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
	}
	bf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recur[I, O]{Arg: arg}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprSelfThen recurses on arg, discards the result, and continues with next.
// O is the body's result type; it cannot be inferred from the discarded
// result and must be supplied.
// Fuses ExprPerform(Recur[I, O]{Arg: arg}) + ExprThen with pooled frames.
func ExprSelfThen[I, O, B any](arg I, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recur[I, O]{Arg: arg}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprDone finishes a body with a, performing no further self-applications.
// The base-case counterpart of the ExprSelf constructors.
func ExprDone[O any](a O) kont.Expr[O] {
	return kont.ExprReturn(a)
}

// ExprSelfMap recurses on arg and applies the pure function f to the result.
// Fuses ExprPerform(Recur[I, O]{Arg: arg}) + ExprMap.
func ExprSelfMap[I, O, B any](arg I, f func(O) B) kont.Expr[B] {
	mf := &kont.MapFrame[kont.Erased, kont.Erased]{
		F:    func(a kont.Erased) kont.Erased { return f(a.(O)) },
		Next: exprReturnFrame,
	}
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recur[I, O]{Arg: arg}
	ef.Resume = identityResume
	ef.Next = mf
	return kont.ExprSuspend[B](ef)
}
