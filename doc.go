// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixp derives recursive functions from non-recursive step functions
// via a strict fixed-point combinator, without named self-reference.
//
// A generator is a step function that receives "its own recursive version" as
// an explicit argument instead of calling itself by name. [Fix] turns a
// generator into its fixed point: an ordinary one-argument [Func] whose every
// invocation behaves as if the generator could call itself.
//
// # Architecture
//
//   - Self-application: [Handle] is the single named recursive type that
//     collapses the otherwise infinitely unfolding "function that takes
//     itself" signature. [MakeHandle] wraps a step function; [Apply] performs
//     one typed Ω self-application step with a payload argument.
//   - Combinator: [Fix] composes [MakeHandle] and [Apply] with an
//     eta-expanded self closure. The eta-expansion defers re-expansion until
//     the generator actually demands a recursive call, which is what makes
//     the construction terminate under Go's strict evaluation order.
//   - Effectful: [FixEff] and [FixExpr] are fixed points at effectful answer
//     types on [code.hybscloud.com/kont], supporting closure-based
//     (Cont-world) and defunctionalized (Expr-world) evaluation.
//     [Iterate] and [IterateExpr] specialize to tail recursion via
//     [code.hybscloud.com/kont.Either].
//   - Open recursion as an effect: [Recur] is an effect operation standing
//     for one self-application; bodies written with [Self] are interpreted by
//     [Exec]/[ExecExpr], with error short-circuiting via [ExecError] and
//     one-effect-at-a-time evaluation via [Step]/[Advance].
//   - Detached evaluation: [Detach] splits a fixed point into a [Caller] and
//     an [Evaluator] connected by bounded lock-free SPSC queues from
//     [code.hybscloud.com/lfq]. Transfer is non-blocking at the queue
//     boundary ([code.hybscloud.com/iox.ErrWouldBlock]); blocking entry
//     points wait with adaptive backoff.
//
// # Limits
//
// The combinator neither detects nor limits recursion depth. A generator
// with no reachable base case recurses until the goroutine stack is
// exhausted; that is a fatal resource failure of the host environment, not a
// recoverable condition. Memoization and mutual recursion are out of scope.
//
// # Example
//
//	fact := fixp.Fix(func(self fixp.Func[int, int], n int) int {
//		if n == 0 {
//			return 1
//		}
//		return n * self(n-1)
//	})
//	fact.Call(5) // 120
package fixp
