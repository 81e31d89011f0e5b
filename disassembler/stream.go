/*
 * synacor - Stream disassembly: run-coalescing of out strings and raw data.
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

package disassembler

import (
	"encoding/json"
	"fmt"

	"synacor/vm"
)

// coalescer buffers a maximal run of printable words belonging to a
// single mnemonic (out or dw) into one JSON-escaped string line,
// breaking on any non-printable value, address gap, or instruction
// that doesn't belong to the run.
type coalescer struct {
	mnemonic  string
	size      int
	emit      func(addr int, line string)
	active    bool
	startAddr int
	lastAddr  int
	text      []byte
}

func newCoalescer(mnemonic string, size int, emit func(int, string)) *coalescer {
	return &coalescer{mnemonic: mnemonic, size: size, emit: emit}
}

// PrintNumeric extends or breaks the run based on whether x falls in
// the printable range (32..126 or 10) and is contiguous with the
// run's last address.
func (c *coalescer) PrintNumeric(ip int, x int16) {
	if isPrintable(x) {
		switch {
		case !c.active:
			c.active, c.startAddr, c.lastAddr = true, ip, ip
			c.text = append(c.text[:0], byte(x))
		case c.lastAddr+c.size == ip:
			c.lastAddr = ip
			c.text = append(c.text, byte(x))
		default:
			c.flush()
			c.active, c.startAddr, c.lastAddr = true, ip, ip
			c.text = append(c.text[:0], byte(x))
		}
		return
	}
	c.flush()
	c.emit(ip, fmt.Sprintf("%s %04x", c.mnemonic, uint16(x)))
}

// PrintText always breaks any open run, then emits text verbatim
// (used for register references and invalid operands, which never
// join a printable run).
func (c *coalescer) PrintText(ip int, text string) {
	c.flush()
	c.emit(ip, fmt.Sprintf("%s %s", c.mnemonic, text))
}

func (c *coalescer) flush() {
	if !c.active {
		return
	}
	encoded, _ := json.Marshal(string(c.text))
	c.emit(c.startAddr, fmt.Sprintf("%s %s", c.mnemonic, encoded))
	c.active = false
	c.text = c.text[:0]
}

// AddrRange is a half-open [Start, End) range of addresses that the
// caller wants rendered as raw data rather than decoded as code.
type AddrRange struct {
	Start, End int
}

func (r *AddrRange) contains(ip int) bool {
	return r != nil && ip >= r.Start && ip < r.End
}

// DisassembleStream renders the full image (or image from addr
// onward) as a stream listing, coalescing consecutive printable out
// operands into string literals and, within rawRange if given,
// coalescing consecutive printable raw words into dw string literals.
func DisassembleStream(mem []int16, addr int, rawRange *AddrRange) []string {
	var lines []string
	emit := func(a int, s string) {
		lines = append(lines, fmt.Sprintf("%04x: %s", a, s))
	}
	groupOut := newCoalescer("out", 2, emit)
	groupDw := newCoalescer("dw", 1, emit)

	ip := addr
	for ip < len(mem) {
		op := mem[ip]
		if op != 19 {
			groupOut.flush()
		}
		if rawRange.contains(ip) {
			groupDw.PrintNumeric(ip, op)
			ip++
			continue
		}
		if op >= 0 && int(op) < 22 {
			groupDw.flush()
		}

		switch op {
		case 19:
			var a int16
			if ip+1 < len(mem) {
				a = mem[ip+1]
			}
			if vm.DecodeOperand(a).Kind == vm.Literal {
				groupOut.PrintNumeric(ip, a)
			} else {
				groupOut.PrintText(ip, operandText(a))
			}
			ip += 2
		case 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 20, 21:
			text, size := disasmOne(mem, ip)
			emit(ip, text)
			ip += size
		default:
			groupDw.PrintNumeric(ip, op)
			ip++
		}
	}
	groupOut.flush()
	groupDw.flush()
	return lines
}
