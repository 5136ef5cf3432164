// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

// Func is the externally visible recursive function derived by [Fix].
// It behaves as an ordinary one-argument function; the only state it closes
// over is the generator reference.
type Func[I, O any] func(I) O

// Call invokes the function with x.
func (f Func[I, O]) Call(x I) O { return f(x) }

// Generator is a non-recursive step function. It receives the recursive
// version of itself as self and uses it for recursive calls; it never refers
// to itself by name.
type Generator[I, O any] func(self Func[I, O], x I) O

// Fix returns the fixed point of g: a function satisfying
//
//	Fix(g).Call(x) == g(Fix(g), x)
//
// for every x. This is the strict (call-by-value) construction: the helper
// hands g an eta-expanded self closure rather than the self-application
// itself. The one-argument closure defers re-expansion until g actually
// demands a recursive call; without it, strict evaluation would unfold the
// self-application unconditionally and never reach a base case.
//
// Fix performs no recursion-depth management. If g never reaches a base case
// for some input, the derived function recurses until the goroutine stack is
// exhausted.
func Fix[I, O any](g Generator[I, O]) Func[I, O] {
	h := MakeHandle(func(self Handle[I, O], x I) O {
		return g(func(a I) O { return Apply(self, a) }, x)
	})
	return func(x I) O { return Apply(h, x) }
}
