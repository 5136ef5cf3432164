// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// Step evaluates an open-recursive computation until the first pending
// self-application. Returns (result, nil) on completion, or (zero,
// suspension) when a Recur operation is pending.
func Step[O any](m kont.Expr[O]) (O, *kont.Suspension[O]) {
	return kont.StepExpr(m)
}

// Advance resolves the suspended self-application against body and resumes.
// One pending top-level self-application is resolved per call;
// self-applications nested inside it are evaluated to completion with
// [ExecExpr] before the suspension resumes.
func Advance[I, O any](body ExprBody[I, O], susp *kont.Suspension[O]) (O, *kont.Suspension[O]) {
	rop, ok := susp.Op().(Recur[I, O])
	if !ok {
		panic("fixp: unhandled effect in Advance")
	}
	return susp.Resume(ExecExpr(body, rop.Arg))
}
