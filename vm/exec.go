/*
 * synacor - Execution engine: opcode dispatch, control flow, breakpoints.
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

import (
	"fmt"
	"sync/atomic"
)

// OpSizes gives the instruction size, in words, for opcodes 0..21.
var OpSizes = [22]int{1, 3, 2, 2, 4, 4, 2, 3, 3, 4, 4, 4, 4, 4, 3, 3, 3, 2, 1, 2, 2, 1}

const mod15 = 0x8000

// ExecError reports a fatal condition the engine cannot continue past:
// an unknown opcode or a modulo-by-zero in the mod instruction.
type ExecError struct {
	Addr int
	Op   int16
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%04x: %02x", e.Addr, uint16(e.Op))
}

// Printer receives characters emitted by the out instruction.
type Printer interface {
	PrintChar(c byte)
	Flush()
}

// InputSource supplies a line of guest input when the in_queue is
// empty. ok is false on EOF.
type InputSource interface {
	ReadLine() (line string, ok bool)
}

// Machine drives an Image through the instruction set, consulting a
// breakpoint set and a debugger-maintained shadow call stack.
type Machine struct {
	Image       *Image
	Halted      bool
	Breaking    bool
	Breakpoints []int
	CallStack   []int
	Printer     Printer
	Input       InputSource

	interrupted atomic.Bool
}

// NewMachine constructs a Machine around an image, seeding the shadow
// call stack with the entry ip.
func NewMachine(im *Image, p Printer, in InputSource) *Machine {
	return &Machine{
		Image:     im,
		Printer:   p,
		Input:     in,
		CallStack: []int{im.IP},
	}
}

func (m *Machine) opSizeAt(ip int) int {
	op := m.Image.Mem[ip]
	if op < 0 || int(op) >= len(OpSizes) {
		return 1
	}
	return OpSizes[op]
}

func (m *Machine) isBreakpoint(addr int) bool {
	for _, b := range m.Breakpoints {
		if b == addr {
			return true
		}
	}
	return false
}

// AddBreakpoint inserts addr, removing any existing occurrence first
// so re-adding moves it to the end.
func (m *Machine) AddBreakpoint(addr int) {
	m.Breakpoints = removeInt(m.Breakpoints, addr)
	m.Breakpoints = append(m.Breakpoints, addr)
}

// RemoveBreakpoint deletes addr from the breakpoint set, if present.
func (m *Machine) RemoveBreakpoint(addr int) {
	m.Breakpoints = removeInt(m.Breakpoints, addr)
}

// Interrupt requests that a running loop stop at the next instruction
// boundary, as though an implicit breakpoint had landed there. It is
// safe to call from another goroutine (a signal handler, typically)
// while Run is in progress. If nothing is running, the request stays
// pending and the next Run stops after its first instruction.
func (m *Machine) Interrupt() {
	m.interrupted.Store(true)
}

func removeInt(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// Run resumes execution until halt, an error, or a break. breakNext
// forces a break after exactly one instruction (used by Next).
func (m *Machine) Run(breakNext bool) error {
	m.Breaking = breakNext
	err := m.runLoop()
	m.Printer.Flush()
	return err
}

// Next executes exactly one instruction then breaks.
func (m *Machine) Next() error {
	return m.Run(true)
}

// Step steps over a call: if the current instruction is call, it
// plants a breakpoint at the return address and resumes; otherwise it
// behaves like Next.
func (m *Machine) Step() error {
	im := m.Image
	if im.IP < 0 || im.IP >= len(im.Mem) {
		return m.Run(true)
	}
	if im.Mem[im.IP] == 17 { // call
		m.AddBreakpoint(im.IP + OpSizes[17])
		return m.Run(false)
	}
	return m.Run(true)
}

// Finish steps out: it plants a breakpoint immediately after the
// call instruction at the top of the shadow call stack and resumes.
// With an empty shadow stack it is a no-op.
func (m *Machine) Finish() error {
	if len(m.CallStack) == 0 {
		return nil
	}
	caller := m.CallStack[len(m.CallStack)-1]
	size := 2 // size of call
	if caller >= 0 && caller < len(m.Image.Mem) {
		size = m.opSizeAt(caller)
	}
	m.AddBreakpoint(caller + size)
	return m.Run(false)
}

// Reset reloads the image from its raw bytes and clears halt/break state.
func (m *Machine) Reset() {
	m.Image.Reset()
	m.Halted = false
	m.Breaking = false
	m.CallStack = []int{m.Image.IP}
}

func (m *Machine) runLoop() error {
	im := m.Image
	mb := len(im.Mem)

	for im.IP >= 0 && im.IP < mb && !m.Halted {
		if err := m.execOne(); err != nil {
			return err
		}
		if m.Breaking {
			break
		}
		if m.interrupted.Swap(false) {
			m.Breaking = true
			break
		}
		if im.IP >= 0 && im.IP < mb && !m.Halted {
			size := m.opSizeAt(im.IP)
			brk := false
			for p := im.IP; p < im.IP+size; p++ {
				if m.isBreakpoint(p) {
					brk = true
					break
				}
			}
			if brk {
				break
			}
		}
	}
	if im.IP >= mb {
		m.Halted = true
	}
	return nil
}

//nolint:gocyclo
func (m *Machine) execOne() error {
	im := m.Image
	mb := len(im.Mem)
	ip := im.IP
	op := im.Mem[ip]

	rval := func(i int) (int16, bool) {
		if m.isBreakpoint(i) {
			m.Breaking = true
		}
		switch op := DecodeOperand(im.Mem[i]); op.Kind {
		case Literal:
			return op.Value, true
		case Register:
			return im.Reg[op.Value], true
		default:
			m.Halted = true
			return 0, false
		}
	}

	lval := func(i int, x int16) bool {
		switch op := DecodeOperand(im.Mem[i]); op.Kind {
		case Literal:
			a := int(op.Value)
			if a >= 0 && a < mb {
				im.Mem[a] = x
			}
			if m.isBreakpoint(a) {
				m.Breaking = true
			}
			return true
		case Register:
			im.Reg[op.Value] = x
			return true
		default:
			m.Halted = true
			return false
		}
	}

	switch op {
	case 0: // halt
		m.Halted = true

	case 1: // set a b
		if b, ok := rval(ip + 2); ok {
			lval(ip+1, b)
			im.IP = ip + 3
		}

	case 2: // push a
		if a, ok := rval(ip + 1); ok {
			im.Stack = append(im.Stack, a)
			im.IP = ip + 2
		}

	case 3: // pop a
		if len(im.Stack) == 0 {
			m.Halted = true
		} else {
			x := im.Stack[len(im.Stack)-1]
			im.Stack = im.Stack[:len(im.Stack)-1]
			lval(ip+1, x)
			im.IP = ip + 2
		}

	case 4: // eq a b c
		b, okb := rval(ip + 2)
		c, okc := rval(ip + 3)
		if okb && okc {
			v := int16(0)
			if b == c {
				v = 1
			}
			lval(ip+1, v)
			im.IP = ip + 4
		}

	case 5: // gt a b c
		b, okb := rval(ip + 2)
		c, okc := rval(ip + 3)
		if okb && okc {
			v := int16(0)
			if b > c {
				v = 1
			}
			lval(ip+1, v)
			im.IP = ip + 4
		}

	case 6: // jmp a
		if a, ok := rval(ip + 1); ok {
			im.IP = int(a)
		}

	case 7: // jt a b
		a, oka := rval(ip + 1)
		b, okb := rval(ip + 2)
		if oka && okb {
			if a != 0 {
				im.IP = int(b)
			} else {
				im.IP = ip + 3
			}
		}

	case 8: // jf a b
		a, oka := rval(ip + 1)
		b, okb := rval(ip + 2)
		if oka && okb {
			if a == 0 {
				im.IP = int(b)
			} else {
				im.IP = ip + 3
			}
		}

	case 9: // add a b c
		b, okb := rval(ip + 2)
		c, okc := rval(ip + 3)
		if okb && okc {
			lval(ip+1, int16((int(b)+int(c))%mod15))
			im.IP = ip + 4
		}

	case 10: // mult a b c
		b, okb := rval(ip + 2)
		c, okc := rval(ip + 3)
		if okb && okc {
			lval(ip+1, int16((int(b)*int(c))%mod15))
			im.IP = ip + 4
		}

	case 11: // mod a b c
		b, okb := rval(ip + 2)
		c, okc := rval(ip + 3)
		if okb && okc {
			if c == 0 {
				m.Printer.Flush()
				return &ExecError{Addr: ip, Op: op}
			}
			lval(ip+1, int16(int(b)%int(c)))
			im.IP = ip + 4
		}

	case 12: // and a b c
		b, okb := rval(ip + 2)
		c, okc := rval(ip + 3)
		if okb && okc {
			lval(ip+1, b&c)
			im.IP = ip + 4
		}

	case 13: // or a b c
		b, okb := rval(ip + 2)
		c, okc := rval(ip + 3)
		if okb && okc {
			lval(ip+1, b|c)
			im.IP = ip + 4
		}

	case 14: // not a b
		if b, ok := rval(ip + 2); ok {
			lval(ip+1, int16((^int(b))&0x7fff))
			im.IP = ip + 3
		}

	case 15: // rmem a b
		if b, ok := rval(ip + 2); ok {
			addr := int(b)
			if m.isBreakpoint(addr) {
				m.Breaking = true
			}
			var val int16
			if addr >= 0 && addr < mb {
				val = im.Mem[addr]
			}
			lval(ip+1, val)
			im.IP = ip + 3
		}

	case 16: // wmem a b
		a, oka := rval(ip + 1)
		b, okb := rval(ip + 2)
		if oka && okb {
			addr := int(a)
			if m.isBreakpoint(addr) {
				m.Breaking = true
			}
			if addr >= 0 && addr < mb {
				im.Mem[addr] = b
			}
			im.IP = ip + 3
		}

	case 17: // call a
		if a, ok := rval(ip + 1); ok {
			im.Stack = append(im.Stack, int16(ip+2))
			m.CallStack = append(m.CallStack, ip)
			im.IP = int(a)
		}

	case 18: // ret
		if len(im.Stack) == 0 {
			m.Halted = true
		} else {
			a := im.Stack[len(im.Stack)-1]
			im.Stack = im.Stack[:len(im.Stack)-1]
			if len(m.CallStack) > 0 {
				m.CallStack = m.CallStack[:len(m.CallStack)-1]
			}
			im.IP = int(a)
		}

	case 19: // out a
		if c, ok := rval(ip + 1); ok {
			m.Printer.PrintChar(byte(c))
			im.IP = ip + 2
		}

	case 20: // in a
		for len(im.InQueue) == 0 {
			line, ok := m.Input.ReadLine()
			if !ok {
				m.Halted = true
				return nil
			}
			im.QueueInput(line)
		}
		c, _ := im.PopInput()
		lval(ip+1, int16(c))
		im.IP = ip + 2

	case 21: // noop
		im.IP = ip + 1

	default:
		m.Printer.Flush()
		return &ExecError{Addr: ip, Op: op}
	}

	return nil
}
