/*
 * synacor - Operand decoder: literal, register reference, or invalid.
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

package vm

// OperandKind tags a decoded memory cell.
type OperandKind int

const (
	Literal OperandKind = iota
	Register
	Invalid
)

// Operand is the result of classifying a raw word per §3 of the
// architecture: a non-negative word is a Literal carrying its own
// value; a word below -0x7ff8 is a Register reference (Value holds
// the register index 0..7); anything else is Invalid.
type Operand struct {
	Kind  OperandKind
	Value int16
}

// DecodeOperand classifies a raw memory word. It is the single shared
// view used both by the execution engine (vm/exec.go's rval/lval,
// which add breakpoint-marking around it) and by the disassembler
// (disassembler/stream.go) to tell a literal from a register
// reference from an invalid word.
func DecodeOperand(w int16) Operand {
	switch {
	case w >= 0:
		return Operand{Kind: Literal, Value: w}
	case w < -0x7ff8:
		return Operand{Kind: Register, Value: int16(int(w) + 0x8000)}
	default:
		return Operand{Kind: Invalid, Value: w}
	}
}
