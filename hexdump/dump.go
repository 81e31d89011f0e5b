/*
 * synacor - Hex/word dump: tabular memory, register, and stack views.
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

// Package hexdump renders rows of 15-bit words as an address-prefixed
// hex table with an ASCII gutter, the tabular view the debugger shell
// uses for stack, register, and memory inspection.
package hexdump

import (
	"fmt"
	"strings"
)

// operandHex renders a raw word the way the debugger's operand-aware
// views do: a literal keeps its own hex value; a register-encoded word
// (< -0x7ff8) collapses to its small register index (0..7), matching
// how the source's mem_dump helper displays register slots.
func operandHex(w int16) uint16 {
	return uint16((int(w) + 0x8000) % 0x8000)
}

// FormatWords renders data[start:stop) as rows of columns words each,
// prefixed with the row's starting address and, if ascii is true,
// followed by a printable-character gutter.
func FormatWords(data []int16, start, stop, columns int, ascii bool) string {
	if columns <= 0 {
		columns = 16
	}
	if start < 0 {
		start = 0
	}
	if stop > len(data) {
		stop = len(data)
	}

	var b strings.Builder
	for r := start; r < stop; r += columns {
		end := r + columns
		if end > stop {
			end = stop
		}
		row := data[r:end]

		fmt.Fprintf(&b, "%04x:", r)
		for _, w := range row {
			fmt.Fprintf(&b, " %04x", operandHex(w))
		}
		if ascii {
			pad := strings.Repeat("     ", columns-len(row)) + "  "
			b.WriteString(pad)
			for _, w := range row {
				c := int(w)
				if c >= 32 && c < 127 {
					b.WriteByte(byte(c))
				} else {
					b.WriteByte('.')
				}
			}
		}
		if end < stop {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
