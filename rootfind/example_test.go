// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/rootfind"
)

func ExampleFindRoot() {
	res, err := rootfind.FindRoot(rootfind.MethodNewton, "x^2 - 4", []float64{3}, 1e-6, 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %s\n", res.Root, res.Status)
	// Output:
	// 2.0000 converged
}

func ExampleBisection() {
	f := rootfind.Plain(func(x float64) float64 { return x*x - 4 })
	res, _ := rootfind.Bisection(f, 1, 3)
	fmt.Println(res.Root, res.Iterations, res.Trace.Brackets)

	res, _ = rootfind.Bisection(f, 5, 10)
	fmt.Println(res.Status, math.IsNaN(res.Root))
	// Output:
	// 2 1 [{1 3} {2 2}]
	// no sign change on bracket true
}
