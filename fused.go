// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// SelfBind recurses on arg and passes the result to f.
// Fuses Perform(Recur[I, O]{Arg: arg}) + Bind.
func SelfBind[I, O, B any](arg I, f func(O) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Self[I, O](arg), f)
}

// SelfMap recurses on arg and applies the pure function f to the result.
// Fuses Perform(Recur[I, O]{Arg: arg}) + Map.
func SelfMap[I, O, B any](arg I, f func(O) B) kont.Eff[B] {
	return kont.Map(Self[I, O](arg), f)
}

// SelfThen recurses on arg, discards the result, and continues with next.
// For bodies that recurse for their effects alone. O is the body's result
// type; it cannot be inferred from the discarded result and must be supplied.
// Fuses Perform(Recur[I, O]{Arg: arg}) + Then.
func SelfThen[I, O, B any](arg I, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Self[I, O](arg), next)
}

// Done finishes a body with a, performing no further self-applications.
// The base-case counterpart of the Self constructors.
func Done[O any](a O) kont.Eff[O] {
	return kont.Pure(a)
}
