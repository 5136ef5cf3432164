// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world open-recursive computation to Expr-world.
// The result can be evaluated with ExecExpr or stepped with Step and
// Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world open-recursive computation to Cont-world.
// The result can be evaluated with Exec or ExecError.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
