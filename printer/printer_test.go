package printer

import (
	"strings"
	"testing"
)

func TestRelaxedModeBracketsRunOnce(t *testing.T) {
	var b strings.Builder
	p := NewTextPrinter(&b)
	for _, c := range []byte("hi\n") {
		p.PrintChar(c)
	}
	want := colorStart + "hi" + colorEnd + "\n"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRelaxedModeFlushClosesOpenRun(t *testing.T) {
	var b strings.Builder
	p := NewTextPrinter(&b)
	p.PrintChar('x')
	p.Flush()
	want := colorStart + "x" + colorEnd
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStrictModeBracketsEveryChar(t *testing.T) {
	var b strings.Builder
	p := &TextPrinter{Out: &b, Relaxed: false}
	p.PrintChar('a')
	p.PrintChar('b')
	want := colorStart + "a" + colorEnd + colorStart + "b" + colorEnd
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
