/*
 * synacor - Debugger shell: REPL command parsing and dispatch.
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

// Package debugger implements the interactive command shell that
// drives a vm.Machine: run/step/next/finish, breakpoints, memory and
// register inspection and mutation, find, and snapshot save/load.
package debugger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"synacor/disassembler"
	"synacor/hexdump"
	"synacor/vm"
)

// SavesDir is the default directory snapshots are stored under.
const SavesDir = "saves"

// Shell holds the REPL state around a Machine.
type Shell struct {
	VM          *vm.Machine
	Out         io.Writer // diagnostics (stderr in the CLI)
	lastCommand string
}

// NewShell constructs a shell around an already-built Machine.
func NewShell(m *vm.Machine, out io.Writer) *Shell {
	return &Shell{VM: m, Out: out}
}

// Process parses and dispatches one command line. quit is true once
// the shell should exit. A whitespace-only line is ignored; a truly
// empty line replays the previous command.
func (s *Shell) Process(line string) (quit bool, err error) {
	if strings.TrimSpace(line) == "" && line != "" {
		return false, nil
	}
	if line == "" {
		if s.lastCommand == "" {
			return false, nil
		}
		return s.Process(s.lastCommand)
	}
	s.lastCommand = line

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "run", "c":
		err = s.cmdRun()
	case "next", "n":
		err = s.cmdNext()
	case "step", "s":
		err = s.cmdStep()
	case "finish", "fin":
		err = s.cmdFinish()
	case "b":
		s.cmdBreak(args)
	case "bd":
		s.cmdBreakDelete(args)
	case "bl":
		s.cmdBreakList()
	case "bt":
		s.cmdBacktrace()
	case "stack":
		s.cmdStack()
	case "mem":
		s.cmdMem(args)
	case "regs":
		s.cmdRegs()
	case "disasm", "dis":
		s.cmdDisasm(args)
	case "w", "write":
		s.cmdWrite(args)
	case "dump":
		err = s.cmdDump(args)
	case "save":
		err = s.cmdSave(args)
	case "load":
		err = s.cmdLoad(args)
	case "find":
		s.cmdFind(line)
	case "reset":
		s.VM.Reset()
	case "quit", "exit":
		return true, nil
	default:
		s.printUsage()
	}
	return false, err
}

func (s *Shell) afterRun() {
	if len(s.VM.Image.Mem) == 0 {
		return
	}
	fmt.Fprintln(s.Out)
	for _, l := range disassembler.DisassembleLines(s.VM.Image.Mem, s.VM.Image.IP, 5) {
		fmt.Fprintln(s.Out, l)
	}
}

func (s *Shell) cmdRun() error {
	err := s.VM.Run(false)
	s.afterRun()
	return err
}

func (s *Shell) cmdNext() error {
	err := s.VM.Next()
	s.afterRun()
	return err
}

func (s *Shell) cmdStep() error {
	err := s.VM.Step()
	s.afterRun()
	return err
}

func (s *Shell) cmdFinish() error {
	err := s.VM.Finish()
	s.afterRun()
	return err
}

func parseHex(s string) (int, bool) {
	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func (s *Shell) cmdBreak(args []string) {
	addr := s.VM.Image.IP
	if len(args) > 0 {
		v, ok := parseHex(args[0])
		if !ok {
			fmt.Fprintf(s.Out, "bad address: %s\n", args[0])
			return
		}
		addr = v
	}
	s.VM.AddBreakpoint(addr)
}

func (s *Shell) cmdBreakDelete(args []string) {
	addr := s.VM.Image.IP
	if len(args) > 0 {
		v, ok := parseHex(args[0])
		if !ok {
			fmt.Fprintf(s.Out, "bad address: %s\n", args[0])
			return
		}
		addr = v
	}
	s.VM.RemoveBreakpoint(addr)
}

func (s *Shell) cmdBreakList() {
	for _, b := range s.VM.Breakpoints {
		fmt.Fprintf(s.Out, " - %04x\n", b)
	}
}

func (s *Shell) cmdBacktrace() {
	mem := s.VM.Image.Mem
	for _, addr := range s.VM.CallStack {
		lines := disassembler.DisassembleLines(mem, addr, 1)
		if len(lines) > 0 {
			fmt.Fprintf(s.Out, " - %s\n", lines[0])
		}
	}
}

func (s *Shell) cmdStack() {
	fmt.Fprintln(s.Out, hexdump.FormatWords(s.VM.Image.Stack, 0, len(s.VM.Image.Stack), 16, true))
}

func (s *Shell) cmdMem(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.Out, "usage: mem addr")
		return
	}
	addr, ok := parseHex(args[0])
	if !ok {
		fmt.Fprintf(s.Out, "bad address: %s\n", args[0])
		return
	}
	stop := addr + 16*5
	fmt.Fprintln(s.Out, hexdump.FormatWords(s.VM.Image.Mem, addr, stop, 16, true))
}

func (s *Shell) cmdRegs() {
	fmt.Fprintln(s.Out, hexdump.FormatWords(s.VM.Image.Reg[:], 0, vm.NumRegs, 16, true))
}

func (s *Shell) cmdDisasm(args []string) {
	addr := s.VM.Image.IP
	lines := 5
	if len(args) > 0 {
		if v, ok := parseHex(args[0]); ok {
			addr = v
		}
	}
	if len(args) > 1 {
		if v, ok := parseHex(args[1]); ok {
			lines = v
		}
	}
	for _, l := range disassembler.DisassembleLines(s.VM.Image.Mem, addr, lines) {
		fmt.Fprintln(s.Out, l)
	}
}

func isRegisterToken(tok string) (int, bool) {
	if len(tok) < 2 || (tok[0] != 'r' && tok[0] != 'R') {
		return 0, false
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 || n >= vm.NumRegs {
		return 0, false
	}
	return n, true
}

func (s *Shell) cmdWrite(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.Out, "usage: write (addr|reg) v...")
		return
	}
	target := args[0]
	values := make([]int16, 0, len(args)-1)
	for _, a := range args[1:] {
		v, ok := parseHex(a)
		if !ok {
			fmt.Fprintf(s.Out, "bad value: %s\n", a)
			return
		}
		values = append(values, int16(v))
	}
	if reg, ok := isRegisterToken(target); ok {
		s.VM.Image.Reg[reg] = values[len(values)-1]
		return
	}
	addr, ok := parseHex(target)
	if !ok {
		fmt.Fprintf(s.Out, "bad address: %s\n", target)
		return
	}
	mem := s.VM.Image.Mem
	for _, v := range values {
		if addr >= 0 && addr < len(mem) {
			mem[addr] = v
		}
		addr++
	}
}

func (s *Shell) printUsage() {
	fmt.Fprint(s.Out, usageText)
}

const usageText = `Debugger commands:
reset
	restart the executable
c, run
	continue execution
s, step
	step over calls
n, next
	next instruction
fin, finish
	step out
dis, disasm [addr] [lines]
	disassemble
dump [file]
	dump memory to file
save [file]
	save state
load [file]
	load save
find [text]
	search for text
b [addr]
	add exec/memory breakpoint
bl
	list breakpoints
bd [addr]
	remove breakpoint
bt
	print call stack
stack
	show stack
mem addr
	show memory
w, write (addr|reg) value...
	write to memory or register
regs
	show registers
quit
	exit debugger
help
	this help screen
`
