/*
 * synacor - Play mode: relaxed printer plus VM meta-commands.
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

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"synacor/vm"
)

// lineInput supplies guest input lines to the engine, optionally
// intercepting a leading ":" meta-command before it ever reaches the
// guest (play mode only; nil meta means no interception, as in
// debugger mode).
type lineInput struct {
	scanner *bufio.Scanner
	meta    *metaHandler
}

func (l *lineInput) ReadLine() (string, bool) {
	if l.scanner == nil {
		l.scanner = bufio.NewScanner(os.Stdin)
	}
	for {
		fmt.Print("> ")
		if !l.scanner.Scan() {
			return "", false
		}
		line := l.scanner.Text()
		if l.meta != nil && strings.HasPrefix(line, ":") {
			l.meta.handle(line)
			continue
		}
		return line, true
	}
}

// metaHandler implements the play-mode ":" commands: :help, :dump,
// :quit, :reset, :save, :load — grounded on the original play.py's
// handle_vm_command.
type metaHandler struct {
	vm *vm.Machine
}

func newMetaHandler(m *vm.Machine) *metaHandler {
	return &metaHandler{vm: m}
}

func (h *metaHandler) handle(line string) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(os.Stderr, ":help :dump [file] :quit :reset :save [file] :load [file]")
	case "dump":
		name := "dump.bin"
		if len(args) > 0 {
			name = args[0]
		}
		f, err := os.Create(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		defer f.Close()
		if err := h.vm.Image.DumpMem(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprintf(os.Stderr, "\n%q dumped\n", name)
	case "reset":
		h.vm.Reset()
	case "save":
		name := "save000"
		if len(args) > 0 {
			name = args[0]
		}
		path := filepath.Join("saves", name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		defer f.Close()
		if err := h.vm.Image.WriteSnapshot(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprintf(os.Stderr, "\n%s saved\n", path)
	case "load":
		name := "save000"
		if len(args) > 0 {
			name = args[0]
		}
		path := filepath.Join("saves", name)
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s not found\n", path)
			return
		}
		defer f.Close()
		im, err := vm.ReadSnapshot(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		im.Raw = h.vm.Image.Raw
		h.vm.Image = im
		h.vm.Halted = false
		fmt.Fprintf(os.Stderr, "\n%s loaded\n", path)
	case "quit":
		os.Exit(0)
	default:
		fmt.Fprintln(os.Stderr, "unknown command: :"+cmd)
	}
}

func runPlay(m *vm.Machine) {
	if err := m.Run(false); err != nil {
		slog.Error("engine halted", "error", err.Error())
		os.Exit(1)
	}
	os.Exit(0)
}
