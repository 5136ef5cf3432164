// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp_test

import (
	"testing"

	"code.hybscloud.com/fixp"
	"code.hybscloud.com/kont"
)

func TestFixEffPure(t *testing.T) {
	fact := fixp.FixEff(func(self func(int) kont.Eff[int], n int) kont.Eff[int] {
		if n == 0 {
			return kont.Pure(1)
		}
		return kont.Bind(self(n-1), func(r int) kont.Eff[int] {
			return kont.Pure(n * r)
		})
	})

	result, susp := kont.Step(fact(5))
	if susp != nil {
		t.Fatal("pure computation suspended")
	}
	if result != 120 {
		t.Fatalf("got %d, want 120", result)
	}
}

func TestFixEffWriterTrace(t *testing.T) {
	// The generator interleaves recursion with Writer effects: every
	// self-application tells its argument before recursing.
	fact := fixp.FixEff(func(self func(int) kont.Eff[int], n int) kont.Eff[int] {
		if n == 0 {
			return kont.TellWriter(0, kont.Pure(1))
		}
		return kont.TellWriter(n, kont.Bind(self(n-1), func(r int) kont.Eff[int] {
			return kont.Pure(n * r)
		}))
	})

	result, trace := kont.RunWriter[int](fact(4))
	if result != 24 {
		t.Fatalf("got %d, want 24", result)
	}
	want := []int{4, 3, 2, 1, 0}
	if len(trace) != len(want) {
		t.Fatalf("trace length %d, want %d", len(trace), len(want))
	}
	for i, w := range want {
		if trace[i] != w {
			t.Fatalf("trace[%d] = %d, want %d", i, trace[i], w)
		}
	}
}

func TestFixEffStateCount(t *testing.T) {
	// State effect counts self-applications across the whole recursion.
	fib := fixp.FixEff(func(self func(int) kont.Eff[int], n int) kont.Eff[int] {
		return kont.ModifyState(func(c int) int { return c + 1 }, func(int) kont.Eff[int] {
			if n < 2 {
				return kont.Pure(n)
			}
			return kont.Bind(self(n-1), func(a int) kont.Eff[int] {
				return kont.Bind(self(n-2), func(b int) kont.Eff[int] {
					return kont.Pure(a + b)
				})
			})
		})
	})

	result, calls := kont.RunState(0, fib(6))
	if result != 8 {
		t.Fatalf("got %d, want 8", result)
	}
	// fib call tree for n=6 has 25 nodes
	if calls != 25 {
		t.Fatalf("got %d calls, want 25", calls)
	}
}

func TestIterateCountdown(t *testing.T) {
	sum := fixp.Iterate(10, func(n int) kont.Eff[kont.Either[int, string]] {
		if n == 0 {
			return kont.Pure(kont.Right[int, string]("done"))
		}
		return kont.Pure(kont.Left[int, string](n - 1))
	})

	result, susp := kont.Step(sum)
	if susp != nil {
		t.Fatal("pure iteration suspended")
	}
	if result != "done" {
		t.Fatalf("got %q, want %q", result, "done")
	}
}

func TestIterateAccumulates(t *testing.T) {
	type acc struct {
		n, total int
	}
	total := fixp.Iterate(acc{n: 5}, func(a acc) kont.Eff[kont.Either[acc, int]] {
		if a.n == 0 {
			return kont.Pure(kont.Right[acc](a.total))
		}
		return kont.Pure(kont.Left[acc, int](acc{n: a.n - 1, total: a.total + a.n}))
	})

	result, susp := kont.Step(total)
	if susp != nil {
		t.Fatal("pure iteration suspended")
	}
	if result != 15 {
		t.Fatalf("got %d, want 15", result)
	}
}

func TestIterateWithWriter(t *testing.T) {
	countdown := fixp.Iterate(3, func(n int) kont.Eff[kont.Either[int, struct{}]] {
		if n == 0 {
			return kont.Pure(kont.Right[int](struct{}{}))
		}
		return kont.TellWriter(n, kont.Pure(kont.Left[int, struct{}](n-1)))
	})

	_, trace := kont.RunWriter[int](countdown)
	want := []int{3, 2, 1}
	if len(trace) != len(want) {
		t.Fatalf("trace length %d, want %d", len(trace), len(want))
	}
	for i, w := range want {
		if trace[i] != w {
			t.Fatalf("trace[%d] = %d, want %d", i, trace[i], w)
		}
	}
}
