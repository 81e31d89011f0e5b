/*
 * synacor - Disassembler: single-line and run-coalesced stream rendering.
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

// Package disassembler renders Synacor instructions, either as a
// fixed-length single-instruction-per-line listing (used by the
// debugger) or as a full streaming listing that coalesces runs of
// printable out operands and raw data words.
package disassembler

import (
	"fmt"
)

// operandText renders a raw word the way both read and write operands
// are shown: a literal as hex, a register reference as r0..r7, and
// anything else as an explicit invalid marker. The source renders
// both rvalue and lvalue operands through this same logic (it never
// distinguishes them at the text level), so one helper covers both.
func operandText(w int16) string {
	switch {
	case w >= 0:
		return fmt.Sprintf("%04x", w)
	case w < -0x7ff8:
		return fmt.Sprintf("r%d", int(w)+0x8000)
	default:
		return fmt.Sprintf("(invalid value %02x)", uint16(w))
	}
}

func isPrintable(w int16) bool {
	return (w >= 32 && w < 127) || w == 10
}

func quoteChar(w int16) string {
	switch w {
	case '\n':
		return `'\n'`
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	default:
		return fmt.Sprintf("'%c'", rune(w))
	}
}

// disasmOne decodes one instruction at ip, returning its rendered
// mnemonic-and-operands text (without the address prefix) and size.
// Unknown opcodes render as "?? (XXXX)" with size 1.
func disasmOne(mem []int16, ip int) (text string, size int) {
	op := mem[ip]
	arg := func(off int) int16 {
		if ip+off >= len(mem) {
			return 0
		}
		return mem[ip+off]
	}

	switch op {
	case 0:
		return "halt", 1
	case 1:
		return fmt.Sprintf("set %s %s", operandText(arg(1)), operandText(arg(2))), 3
	case 2:
		return fmt.Sprintf("push %s", operandText(arg(1))), 2
	case 3:
		return fmt.Sprintf("pop %s", operandText(arg(1))), 2
	case 4:
		return fmt.Sprintf("eq %s %s %s", operandText(arg(1)), operandText(arg(2)), operandText(arg(3))), 4
	case 5:
		return fmt.Sprintf("gt %s %s %s", operandText(arg(1)), operandText(arg(2)), operandText(arg(3))), 4
	case 6:
		return fmt.Sprintf("jmp %s", operandText(arg(1))), 2
	case 7:
		return fmt.Sprintf("jt %s %s", operandText(arg(1)), operandText(arg(2))), 3
	case 8:
		return fmt.Sprintf("jf %s %s", operandText(arg(1)), operandText(arg(2))), 3
	case 9:
		return fmt.Sprintf("add %s %s %s", operandText(arg(1)), operandText(arg(2)), operandText(arg(3))), 4
	case 10:
		return fmt.Sprintf("mult %s %s %s", operandText(arg(1)), operandText(arg(2)), operandText(arg(3))), 4
	case 11:
		return fmt.Sprintf("mod %s %s %s", operandText(arg(1)), operandText(arg(2)), operandText(arg(3))), 4
	case 12:
		return fmt.Sprintf("and %s %s %s", operandText(arg(1)), operandText(arg(2)), operandText(arg(3))), 4
	case 13:
		return fmt.Sprintf("or %s %s %s", operandText(arg(1)), operandText(arg(2)), operandText(arg(3))), 4
	case 14:
		return fmt.Sprintf("not %s %s", operandText(arg(1)), operandText(arg(2))), 3
	case 15:
		return fmt.Sprintf("rmem %s %s", operandText(arg(1)), operandText(arg(2))), 3
	case 16:
		return fmt.Sprintf("wmem %s %s", operandText(arg(1)), operandText(arg(2))), 3
	case 17:
		return fmt.Sprintf("call %s", operandText(arg(1))), 2
	case 18:
		return "ret", 1
	case 19:
		a := arg(1)
		if a >= 0 && isPrintable(a) {
			return fmt.Sprintf("out %s", quoteChar(a)), 2
		}
		return fmt.Sprintf("out %s", operandText(a)), 2
	case 20:
		return fmt.Sprintf("in %s", operandText(arg(1))), 2
	case 21:
		return "noop", 1
	default:
		return fmt.Sprintf("?? (%04x)", uint16(op)), 1
	}
}

// DisassembleLines renders up to `lines` consecutive instructions
// starting at addr, one per returned string, each prefixed with its
// address. Addresses outside [0, len(mem)) are not disassembled.
func DisassembleLines(mem []int16, addr, lines int) []string {
	if lines <= 0 {
		lines = 1
	}
	out := make([]string, 0, lines)
	ip := addr
	for i := 0; i < lines && ip >= 0 && ip < len(mem); i++ {
		text, size := disasmOne(mem, ip)
		out = append(out, fmt.Sprintf("%04x: %s", ip, text))
		ip += size
	}
	return out
}
