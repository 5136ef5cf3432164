// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// queueCapacity is the bounded capacity for detached transport queues.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const queueCapacity = 4

// closeSignal terminates Evaluator.Serve when dequeued.
type closeSignal struct{}

// evalContext holds one end's view of the lock-free transport.
// Each direction is a single-producer single-consumer bounded queue:
// arguments flow caller → evaluator, results flow back.
type evalContext struct {
	callQ     *lfq.SPSC[any]
	replyQ    *lfq.SPSC[any]
	callSlot  any
	replySlot any
}

// Caller is the submitting end of a detached fixed point. It behaves like
// the derived [Func], except each invocation crosses the queue boundary.
type Caller[I, O any] struct {
	ctx    evalContext
	serial Serial
}

// Evaluator is the evaluating end of a detached fixed point. It owns the
// derived function and resolves submitted arguments.
//
// Serve is intended for a goroutine of the host's choosing, which lets deep
// recursion run away from the submitting goroutine. The evaluator makes no
// depth guarantees of its own; a divergent generator still exhausts the
// serving goroutine's stack.
type Evaluator[I, O any] struct {
	ctx    evalContext
	f      Func[I, O]
	serial Serial
}

// evalPair holds both ends and the queues in a single allocation.
// SPSC queues are embedded as values; only the ring buffers are separate
// heap objects.
type evalPair[I, O any] struct {
	caller    Caller[I, O]
	evaluator Evaluator[I, O]
	calls     lfq.SPSC[any]
	replies   lfq.SPSC[any]
}

// Detach derives the fixed point of g behind a queue pair, returning the
// submitting and evaluating ends. Transport uses bounded lock-free SPSC
// queues: one for arguments (caller → evaluator), one for results.
//
// Queue operations are non-blocking: they return iox.ErrWouldBlock when the
// peer has not yet produced or consumed. Blocking entry points wait past the
// boundary with adaptive backoff.
func Detach[I, O any](g Generator[I, O]) (*Caller[I, O], *Evaluator[I, O]) {
	s := nextSerial()

	pair := &evalPair[I, O]{}
	pair.calls.Init(queueCapacity)
	pair.replies.Init(queueCapacity)

	pair.caller = Caller[I, O]{
		ctx:    evalContext{callQ: &pair.calls, replyQ: &pair.replies},
		serial: s,
	}
	pair.evaluator = Evaluator[I, O]{
		ctx:    evalContext{callQ: &pair.calls, replyQ: &pair.replies},
		f:      Fix(g),
		serial: s,
	}
	return &pair.caller, &pair.evaluator
}

// Serial returns the serial number assigned to this caller's pair.
func (c *Caller[I, O]) Serial() Serial {
	return c.serial
}

// Serial returns the serial number assigned to this evaluator's pair.
func (ev *Evaluator[I, O]) Serial() Serial {
	return ev.serial
}

// Call submits x to the evaluator and waits for the result.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func (c *Caller[I, O]) Call(x I) O {
	c.ctx.callSlot = x
	var bo iox.Backoff
	for c.ctx.callQ.Enqueue(&c.ctx.callSlot) != nil {
		bo.Wait()
	}
	bo.Reset()
	for {
		v, err := c.ctx.replyQ.Dequeue()
		if err == nil {
			return v.(O)
		}
		bo.Wait()
	}
}

// Close signals the evaluator to stop serving once all submitted calls have
// been resolved. Waits with backoff if the argument queue is full.
func (c *Caller[I, O]) Close() {
	c.ctx.callSlot = closeSignal{}
	var bo iox.Backoff
	for c.ctx.callQ.Enqueue(&c.ctx.callSlot) != nil {
		bo.Wait()
	}
}

// Serve dequeues and resolves calls until the close signal arrives.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (ev *Evaluator[I, O]) Serve() {
	var bo iox.Backoff
	for {
		done, err := ev.Poll()
		if done {
			return
		}
		if err != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
	}
}

// Poll dispatches at most one pending call.
// Returns (true, nil) when the close signal was consumed, or
// (false, iox.ErrWouldBlock) when no call is pending (the I/O boundary).
// Enqueueing the reply waits with backoff; the reply queue is only full
// when the caller has stopped consuming.
func (ev *Evaluator[I, O]) Poll() (bool, error) {
	v, err := ev.ctx.callQ.Dequeue()
	if err != nil {
		return false, err
	}
	if _, ok := v.(closeSignal); ok {
		return true, nil
	}
	ev.ctx.replySlot = ev.f(v.(I))
	var bo iox.Backoff
	for ev.ctx.replyQ.Enqueue(&ev.ctx.replySlot) != nil {
		bo.Wait()
	}
	return false, nil
}
