/*
 * synacor - Debugger mode: wires the liner REPL around the debugger shell.
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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/peterh/liner"

	"synacor/debugger"
	"synacor/vm"
)

// forwardInterrupts relays SIGINT to the machine's cooperative
// interrupt flag for the life of the debugger session, so that a
// guest program running under "run"/"next"/"step"/"finish" can be
// broken out of (it is otherwise unreachable once liner has restored
// the terminal to cooked mode for the duration of the command). Ctrl-C
// at the ": " prompt itself never reaches here: liner's raw mode
// intercepts it first and SetCtrlCAborts turns it into
// ErrPromptAborted.
func forwardInterrupts(m *vm.Machine) func() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		for range sig {
			m.Interrupt()
		}
	}()
	return func() { signal.Stop(sig); close(sig) }
}

func runDebugger(m *vm.Machine) {
	shell := debugger.NewShell(m, os.Stderr)

	stop := forwardInterrupts(m)
	defer stop()

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return debugger.CompleteCmd(partial)
	})

	for {
		command, err := line.Prompt(": ")
		if err == nil {
			line.AppendHistory(command)
			quit, procErr := shell.Process(command)
			if procErr != nil {
				fmt.Fprintln(os.Stderr, "Error: "+procErr.Error())
			}
			if quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("error reading line", "error", err.Error())
		return
	}
}
