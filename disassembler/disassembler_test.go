package disassembler

import "testing"

func TestDisassembleLinesBasic(t *testing.T) {
	// add r0 <- r1+4; out r0; halt
	mem := []int16{9, -0x8000, -0x7fff, 4, 19, -0x8000, 0}
	lines := DisassembleLines(mem, 0, 5)
	want := []string{
		"0000: add r0 r1 0004",
		"0004: out r0",
		"0006: halt",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDisassembleLinesStopsAtImageEnd(t *testing.T) {
	mem := []int16{21, 21}
	lines := DisassembleLines(mem, 0, 10)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
}

func TestDisassembleLinesUnknownOpcode(t *testing.T) {
	mem := []int16{200}
	lines := DisassembleLines(mem, 0, 1)
	want := "0000: ?? (00c8)"
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("lines = %v, want [%q]", lines, want)
	}
}

func TestOperandTextInvalid(t *testing.T) {
	got := operandText(-0x7ff8)
	want := "(invalid value 8008)"
	if got != want {
		t.Errorf("operandText = %q, want %q", got, want)
	}
}

func TestOutPrintableLiteralRendersAsChar(t *testing.T) {
	mem := []int16{19, 'H', 0}
	lines := DisassembleLines(mem, 0, 1)
	want := "0000: out 'H'"
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("lines = %v, want [%q]", lines, want)
	}
}
