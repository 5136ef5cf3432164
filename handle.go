// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

// Handle is the named recursive type for self-application.
//
// A function that takes itself as an argument has no finite structural type:
// writing it out substitutes the signature into its own parameter position
// without end. Handle refers to itself by name instead, collapsing the
// expansion into one finite definition (a recursive "mu" type).
//
// A Handle is an opaque capability to invoke the function it was derived
// from. Handles are immutable values; copying one copies the contained
// function reference, never the function itself.
type Handle[I, O any] struct {
	fn func(Handle[I, O], I) O
}

// MakeHandle wraps a two-argument step function into a Handle.
// Pure wrapping: no error path, no runtime validation. The function value
// must remain valid for as long as any handle derived from it is applied;
// a zero Handle faults on Apply.
func MakeHandle[I, O any](fn func(Handle[I, O], I) O) Handle[I, O] {
	return Handle[I, O]{fn: fn}
}

// Apply performs one self-application step: it invokes the wrapped function,
// passing a fresh handle over the same function value together with x.
// This is the typed Ω primitive x(x), extended with a payload argument.
// Each step constructs its own ephemeral handle; none persists across calls.
func Apply[I, O any](h Handle[I, O], x I) O {
	return h.fn(Handle[I, O]{fn: h.fn}, x)
}
