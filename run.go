// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/iox"
)

// Run derives the fixed point of g behind a detached pair and evaluates it
// on x, interleaving the caller and evaluator ends on the calling goroutine
// using adaptive backoff (iox.Backoff) when neither end can make progress.
// Does not spawn goroutines or create channels.
func Run[I, O any](g Generator[I, O], x I) O {
	caller, evaluator := Detach(g)

	caller.ctx.callSlot = x
	var bo iox.Backoff
	for caller.ctx.callQ.Enqueue(&caller.ctx.callSlot) != nil {
		bo.Wait()
	}
	bo.Reset()

	for {
		progress := false
		if _, err := evaluator.Poll(); err == nil {
			progress = true
		}
		v, err := caller.ctx.replyQ.Dequeue()
		if err == nil {
			return v.(O)
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
}
