package vm

import "testing"

type bufPrinter struct {
	chars []byte
}

func (p *bufPrinter) PrintChar(c byte) { p.chars = append(p.chars, c) }
func (p *bufPrinter) Flush()           {}

type queueInput struct {
	lines []string
	i     int
}

func (q *queueInput) ReadLine() (string, bool) {
	if q.i >= len(q.lines) {
		return "", false
	}
	l := q.lines[q.i]
	q.i++
	return l, true
}

func reg(n int16) int16 { return int16(int(n) - 0x8000) }

func TestSelfTestProgram(t *testing.T) {
	// add r0 <- r1+4; out r0; halt
	mem := []int16{9, reg(0), reg(1), 4, 19, reg(0), 0}
	im := NewImage(PackWords(mem))
	p := &bufPrinter{}
	m := NewMachine(im, p, &queueInput{})

	if err := m.Run(false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !m.Halted {
		t.Fatalf("machine did not halt")
	}
	if len(p.chars) != 1 || p.chars[0] != 4 {
		t.Errorf("output = %v, want [4]", p.chars)
	}
}

func TestCallRet(t *testing.T) {
	// 0: call 6    (size 2)
	// 2: halt      (size 1)
	// 3: noop x3
	// 6: ret
	mem := []int16{17, 6, 0, 21, 21, 21, 18}
	im := NewImage(PackWords(mem))
	m := NewMachine(im, &bufPrinter{}, &queueInput{})

	if err := m.Run(false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !m.Halted {
		t.Fatalf("machine did not halt")
	}
	if im.IP != 2 {
		t.Errorf("ip = %04x, want 0002", im.IP)
	}
	if len(im.Stack) != 0 {
		t.Errorf("stack depth = %d, want 0 (ret should have popped)", len(im.Stack))
	}
}

func TestInputQueueing(t *testing.T) {
	// in r0 (x4), halt
	mem := []int16{
		20, reg(0),
		20, reg(0),
		20, reg(0),
		20, reg(0),
		0,
	}
	im := NewImage(PackWords(mem))
	in := &queueInput{lines: []string{"abc"}}
	m := NewMachine(im, &bufPrinter{}, in)

	want := []byte{'a', 'b', 'c', '\n'}
	for i, w := range want {
		if err := m.Next(); err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
		if got := byte(im.Reg[0]); got != w {
			t.Errorf("Next #%d: reg0 = %q, want %q", i, got, w)
		}
	}
}

func TestBreakpointPausesAtAddress(t *testing.T) {
	// 0: jmp 0   -- infinite loop; breakpoint at 0 should stop before it runs again
	mem := []int16{6, 0}
	im := NewImage(PackWords(mem))
	m := NewMachine(im, &bufPrinter{}, &queueInput{})
	m.AddBreakpoint(0)

	if err := m.Run(false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if im.IP != 0 {
		t.Errorf("ip = %04x, want 0000", im.IP)
	}
	if m.Halted {
		t.Errorf("machine halted, expected a break instead")
	}
}

func TestInterruptStopsRunningLoop(t *testing.T) {
	// 0: jmp 0 -- infinite loop; an interrupt should break it at the
	// next instruction boundary, same as a breakpoint would.
	mem := []int16{6, 0}
	im := NewImage(PackWords(mem))
	m := NewMachine(im, &bufPrinter{}, &queueInput{})
	m.Interrupt()

	if err := m.Run(false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Halted {
		t.Errorf("machine halted, expected an interrupt-based break instead")
	}
	if !m.Breaking {
		t.Errorf("Breaking should be set after an interrupt")
	}
}

func TestInterruptIsConsumedByOneRun(t *testing.T) {
	// A pending interrupt only fires for the run it was requested
	// against; Run(false) resets Breaking up front, and runLoop
	// consumes the flag via Swap(false) on the very next boundary, so
	// a second Run call afterward sees a clean machine.
	mem := []int16{21, 0} // noop, halt
	im := NewImage(PackWords(mem))
	m := NewMachine(im, &bufPrinter{}, &queueInput{})
	m.Interrupt()

	if err := m.Run(false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Halted {
		t.Errorf("machine halted, expected the interrupt to break after the noop")
	}

	if err := m.Run(false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !m.Halted {
		t.Errorf("second run should have reached halt uninterrupted")
	}
}

func TestStepOverCall(t *testing.T) {
	// 0: call 4
	// 2: halt
	// 3: noop
	// 4: ret
	mem := []int16{17, 4, 0, 21, 18}
	im := NewImage(PackWords(mem))
	m := NewMachine(im, &bufPrinter{}, &queueInput{})

	if err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if im.IP != 2 {
		t.Errorf("after step-over, ip = %04x, want 0002", im.IP)
	}
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	mem := []int16{99}
	im := NewImage(PackWords(mem))
	m := NewMachine(im, &bufPrinter{}, &queueInput{})

	err := m.Run(false)
	var execErr *ExecError
	if err == nil {
		t.Fatalf("expected an error for unknown opcode")
	}
	if !errorsAs(err, &execErr) {
		t.Fatalf("error = %v, want *ExecError", err)
	}
	if execErr.Addr != 0 {
		t.Errorf("ExecError.Addr = %d, want 0", execErr.Addr)
	}
}

func errorsAs(err error, target **ExecError) bool {
	e, ok := err.(*ExecError)
	if !ok {
		return false
	}
	*target = e
	return true
}
