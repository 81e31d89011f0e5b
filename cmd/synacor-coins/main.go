/*
 * synacor-coins - Brute-force solver for the coin-monument puzzle.
 *
 * Copyright 2026, Synacor VM project contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Command synacor-coins brute-forces the five-coin monument equation
// a + b*c^2 + d^3 - e == 399, unrelated to the VM core: a tiny
// standalone collaborator, not a dependency of the engine/debugger.
package main

import "fmt"

func monument(a, b, c, d, e int) bool {
	return a+b*c*c+d*d*d-e == 399
}

func permutations(vals []int) [][]int {
	if len(vals) == 1 {
		return [][]int{{vals[0]}}
	}
	var out [][]int
	for i, v := range vals {
		rest := make([]int, 0, len(vals)-1)
		rest = append(rest, vals[:i]...)
		rest = append(rest, vals[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{v}, p...))
		}
	}
	return out
}

func main() {
	coins := []int{2, 3, 5, 7, 9}
	for _, p := range permutations(coins) {
		if monument(p[0], p[1], p[2], p[3], p[4]) {
			fmt.Printf("a=%d b=%d c=%d d=%d e=%d\n", p[0], p[1], p[2], p[3], p[4])
			return
		}
	}
	fmt.Println("no solution found")
}
