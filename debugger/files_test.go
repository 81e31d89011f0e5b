package debugger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"synacor/vm"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(cwd)

	var out bytes.Buffer
	mem := []int16{9, -0x8000, -0x7fff, 4, 19, -0x8000, 0}
	im := vm.NewImage(vm.PackWords(mem))
	m := vm.NewMachine(im, nullPrinter{}, noInput{})
	s := NewShell(m, &out)

	if err := m.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	savedIP := im.IP

	if _, err := s.Process("save test.snap"); err != nil {
		t.Fatalf("Process(save): %v", err)
	}
	if _, err := os.Stat(filepath.Join(SavesDir, "test.snap")); err != nil {
		t.Fatalf("save file missing: %v", err)
	}

	m.Image.Reg[0] = 1234

	if _, err := s.Process("load test.snap"); err != nil {
		t.Fatalf("Process(load): %v", err)
	}
	if m.Image.IP != savedIP {
		t.Errorf("loaded IP = %d, want %d", m.Image.IP, savedIP)
	}
	if m.Image.Reg[0] == 1234 {
		t.Errorf("load did not restore reg0")
	}
}

func TestLoadMissingFileReportsNotFound(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(cwd)

	var out bytes.Buffer
	im := vm.NewImage(vm.PackWords([]int16{0}))
	m := vm.NewMachine(im, nullPrinter{}, noInput{})
	s := NewShell(m, &out)

	if _, err := s.Process("load does-not-exist"); err != nil {
		t.Fatalf("Process(load): %v", err)
	}
	if !strings.Contains(out.String(), "not found") {
		t.Errorf("expected not-found message, got %q", out.String())
	}
}

func TestFindLocatesByteSequence(t *testing.T) {
	var out bytes.Buffer
	mem := []int16{0, 'a', 'b', 'c', 0, 0}
	im := vm.NewImage(vm.PackWords(mem))
	m := vm.NewMachine(im, nullPrinter{}, noInput{})
	s := NewShell(m, &out)

	s.cmdFind(`find "abc"`)
	if !strings.Contains(out.String(), "0001:") {
		t.Errorf("find did not report match address, got %q", out.String())
	}
}

func TestUnquoteStripsMatchingQuotes(t *testing.T) {
	cases := map[string]string{
		`"abc"`: "abc",
		`'abc'`: "abc",
		"abc":   "abc",
		`"a`:     `"a`,
	}
	for in, want := range cases {
		if got := unquote(in); got != want {
			t.Errorf("unquote(%q) = %q, want %q", in, got, want)
		}
	}
}
