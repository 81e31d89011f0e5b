package vm

import "testing"

func TestDecodeOperand(t *testing.T) {
	cases := []struct {
		word int16
		kind OperandKind
		val  int16
	}{
		{0, Literal, 0},
		{32767, Literal, 32767},
		{-0x8000, Register, 0}, // 32768 as uint16
		{-0x7ff9, Register, 7}, // 32775 as uint16
		{-0x7ff8, Invalid, -0x7ff8},
		{-1, Invalid, -1},
	}
	for _, c := range cases {
		got := DecodeOperand(c.word)
		if got.Kind != c.kind {
			t.Errorf("DecodeOperand(%d): kind = %v, want %v", c.word, got.Kind, c.kind)
			continue
		}
		if got.Kind != Invalid && got.Value != c.val {
			t.Errorf("DecodeOperand(%d): value = %d, want %d", c.word, got.Value, c.val)
		}
	}
}
