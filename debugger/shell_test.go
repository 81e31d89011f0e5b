package debugger

import (
	"bytes"
	"strings"
	"testing"

	"synacor/vm"
)

type nullPrinter struct{}

func (nullPrinter) PrintChar(byte) {}
func (nullPrinter) Flush()         {}

type noInput struct{}

func (noInput) ReadLine() (string, bool) { return "", false }

func newTestShell(mem []int16) *Shell {
	im := vm.NewImage(vm.PackWords(mem))
	m := vm.NewMachine(im, nullPrinter{}, noInput{})
	return NewShell(m, &bytes.Buffer{})
}

func TestProcessRunHaltsAndShowsDisasm(t *testing.T) {
	var out bytes.Buffer
	im := vm.NewImage(vm.PackWords([]int16{21, 0}))
	m := vm.NewMachine(im, nullPrinter{}, noInput{})
	s := NewShell(m, &out)

	quit, err := s.Process("run")
	if err != nil {
		t.Fatalf("Process(run): %v", err)
	}
	if quit {
		t.Fatalf("run should not quit the shell")
	}
	if !m.Halted {
		t.Fatalf("machine did not halt")
	}
	if !strings.Contains(out.String(), "0001: halt") {
		t.Errorf("expected post-run disassembly at ip, got %q", out.String())
	}
}

func TestProcessBlankLineRepeatsLastCommand(t *testing.T) {
	s := newTestShell([]int16{21, 21, 21, 0})

	if _, err := s.Process("next"); err != nil {
		t.Fatalf("Process(next): %v", err)
	}
	firstIP := s.VM.Image.IP
	if _, err := s.Process(""); err != nil {
		t.Fatalf("Process(\"\"): %v", err)
	}
	if s.VM.Image.IP == firstIP {
		t.Errorf("blank line did not replay next")
	}
}

func TestProcessWhitespaceOnlyLineIsIgnored(t *testing.T) {
	s := newTestShell([]int16{0})
	s.lastCommand = "b 5"
	if _, err := s.Process("   "); err != nil {
		t.Fatalf("Process(\"   \"): %v", err)
	}
	if len(s.VM.Breakpoints) != 0 {
		t.Errorf("whitespace-only line should not re-run lastCommand")
	}
}

func TestProcessQuit(t *testing.T) {
	s := newTestShell([]int16{0})
	quit, err := s.Process("quit")
	if err != nil || !quit {
		t.Fatalf("Process(quit) = (%v, %v), want (true, nil)", quit, err)
	}
}

func TestBreakAndBreakListAndDelete(t *testing.T) {
	var out bytes.Buffer
	im := vm.NewImage(vm.PackWords([]int16{0}))
	m := vm.NewMachine(im, nullPrinter{}, noInput{})
	s := NewShell(m, &out)

	if _, err := s.Process("b 10"); err != nil {
		t.Fatalf("Process(b 10): %v", err)
	}
	if _, err := s.Process("bl"); err != nil {
		t.Fatalf("Process(bl): %v", err)
	}
	if !strings.Contains(out.String(), "0010") {
		t.Errorf("breakpoint list missing address: %q", out.String())
	}
	if _, err := s.Process("bd 10"); err != nil {
		t.Fatalf("Process(bd 10): %v", err)
	}
	if len(m.Breakpoints) != 0 {
		t.Errorf("breakpoint was not removed")
	}
}

func TestWriteRegisterAndMemory(t *testing.T) {
	s := newTestShell([]int16{0, 0, 0})

	if _, err := s.Process("w r0 2a"); err != nil {
		t.Fatalf("Process(w r0 2a): %v", err)
	}
	if s.VM.Image.Reg[0] != 0x2a {
		t.Errorf("reg0 = %04x, want 002a", s.VM.Image.Reg[0])
	}

	if _, err := s.Process("w 1 99"); err != nil {
		t.Fatalf("Process(w 1 99): %v", err)
	}
	if s.VM.Image.Mem[1] != 0x99 {
		t.Errorf("mem[1] = %04x, want 0099", s.VM.Image.Mem[1])
	}
}

func TestUnknownCommandPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	im := vm.NewImage(vm.PackWords([]int16{0}))
	m := vm.NewMachine(im, nullPrinter{}, noInput{})
	s := NewShell(m, &out)

	if _, err := s.Process("bogus"); err != nil {
		t.Fatalf("Process(bogus): %v", err)
	}
	if !strings.Contains(out.String(), "Debugger commands:") {
		t.Errorf("expected usage text, got %q", out.String())
	}
}
