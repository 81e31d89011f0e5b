package disassembler

import "testing"

func TestDisassembleStreamCoalescesOutString(t *testing.T) {
	mem := []int16{19, 'H', 19, 'i', 19, '\n', 0}
	lines := DisassembleStream(mem, 0, nil)
	want := `0000: out "Hi\n"`
	if len(lines) == 0 || lines[0] != want {
		t.Fatalf("lines = %v, want first line %q", lines, want)
	}
	if len(lines) != 2 {
		t.Errorf("got %d lines, want 2 (coalesced out run + halt): %v", len(lines), lines)
	}
}

func TestDisassembleStreamBreaksRunOnRegisterOperand(t *testing.T) {
	// out 'H'; out r0; out 'i'
	mem := []int16{19, 'H', 19, -0x8000, 19, 'i'}
	lines := DisassembleStream(mem, 0, nil)
	want := []string{
		`0000: out "H"`,
		`0002: out r0`,
		`0004: out "i"`,
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

func TestDisassembleStreamRawRangeCoalescesDataWords(t *testing.T) {
	mem := []int16{'a', 'b', 'c'}
	lines := DisassembleStream(mem, 0, &AddrRange{Start: 0, End: 3})
	want := `0000: dw "abc"`
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("lines = %v, want [%q]", lines, want)
	}
}

func TestDisassembleStreamUnknownOpcodeAsDataWord(t *testing.T) {
	mem := []int16{5000, 0}
	lines := DisassembleStream(mem, 0, nil)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	want0 := "0000: dw 1388"
	if lines[0] != want0 {
		t.Errorf("line 0 = %q, want %q", lines[0], want0)
	}
}

func TestAddrRangeContainsNilSafe(t *testing.T) {
	var r *AddrRange
	if r.contains(5) {
		t.Errorf("nil AddrRange should never contain anything")
	}
}
