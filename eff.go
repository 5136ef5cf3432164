// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/kont"
)

// EffGenerator is a non-recursive step function at an effectful answer type
// (Cont-world). Recursive calls through self produce kont computations, so a
// generator can interleave recursion with kont effects.
type EffGenerator[I, O any] func(self func(I) kont.Eff[O], x I) kont.Eff[O]

// FixEff returns the fixed point of an effectful generator (Cont-world).
// The core [Handle] mechanism is reused with kont.Eff[O] as the answer type;
// the returned function builds the recursive computation, which is then run
// with whatever kont handler the effects require.
func FixEff[I, O any](g EffGenerator[I, O]) func(I) kont.Eff[O] {
	h := MakeHandle(func(self Handle[I, kont.Eff[O]], x I) kont.Eff[O] {
		return g(func(a I) kont.Eff[O] { return Apply(self, a) }, x)
	})
	return func(x I) kont.Eff[O] { return Apply(h, x) }
}

// Iterate runs a tail-recursive computation (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Expressed through [FixEff]: the loop is the fixed point of a generator
// whose only recursive call is in tail position.
func Iterate[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	loop := FixEff(func(self func(S) kont.Eff[A], s S) kont.Eff[A] {
		return kont.Bind(step(s), func(e kont.Either[S, A]) kont.Eff[A] {
			if left, ok := e.GetLeft(); ok {
				return self(left)
			}
			right, _ := e.GetRight()
			return kont.Pure(right)
		})
	})
	return loop(initial)
}
