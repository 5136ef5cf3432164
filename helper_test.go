// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixp_test

import (
	"code.hybscloud.com/fixp"
)

// factGen is the canonical factorial generator used across tests.
func factGen(self fixp.Func[int, int], n int) int {
	if n == 0 {
		return 1
	}
	return n * self(n-1)
}

// fibGen is the canonical Fibonacci generator used across tests.
func fibGen(self fixp.Func[int, int], n int) int {
	if n < 2 {
		return n
	}
	return self(n-1) + self(n-2)
}

// iterFact is the loop-based reference implementation for factorial.
func iterFact(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}

// iterFib is the loop-based reference implementation for Fibonacci.
func iterFib(n int) int {
	a, b := 0, 1
	for range n {
		a, b = b, a+b
	}
	return a
}
