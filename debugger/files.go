/*
 * synacor - Debugger shell: dump/save/load/find file-backed commands.
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

package debugger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"synacor/hexdump"
	"synacor/vm"
)

func (s *Shell) cmdDump(args []string) error {
	name := "dump.bin"
	if len(args) > 0 {
		name = args[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	defer f.Close()
	if err := s.VM.Image.DumpMem(f); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	fmt.Fprintf(s.Out, "\n%q dumped\n", name)
	return nil
}

func (s *Shell) cmdSave(args []string) error {
	name := "save000"
	if len(args) > 0 {
		name = args[0]
	}
	path := filepath.Join(SavesDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer f.Close()
	if err := s.VM.Image.WriteSnapshot(f); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintf(s.Out, "\n%s saved\n", path)
	return nil
}

func (s *Shell) cmdLoad(args []string) error {
	name := "save000"
	if len(args) > 0 {
		name = args[0]
	}
	path := filepath.Join(SavesDir, name)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(s.Out, "\n%s not found\n", path)
		return nil
	}
	defer f.Close()

	im, err := vm.ReadSnapshot(f)
	if err != nil {
		fmt.Fprintf(s.Out, "\n%s: %v\n", path, err)
		return nil
	}
	im.Raw = s.VM.Image.Raw
	s.VM.Image = im
	s.VM.Halted = false
	s.VM.Breaking = false
	fmt.Fprintf(s.Out, "\n%s loaded\n", path)
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func (s *Shell) cmdFind(line string) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
		return
	}
	needle := []byte(unquote(strings.TrimSpace(fields[1])))
	if len(needle) == 0 {
		return
	}

	mem := s.VM.Image.Mem
	n := len(needle)
	start := 0
	for start+n <= len(mem) {
		match := true
		for i := 0; i < n; i++ {
			if byte(mem[start+i]) != needle[i] {
				match = false
				break
			}
		}
		if match {
			addr := start
			fmt.Fprintln(s.Out, hexdump.FormatWords(mem, addr, addr+16, 16, true))
			fmt.Fprintln(s.Out)
			start += n
		} else {
			start++
		}
	}
}
