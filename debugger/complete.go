/*
 * synacor - Debugger shell: command-name completion for the line editor.
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

import "strings"

// commandNames lists every top-level shell command, aliases included,
// for tab completion.
var commandNames = []string{
	"run", "c", "next", "n", "step", "s", "finish", "fin",
	"b", "bd", "bl", "bt", "stack", "mem", "regs",
	"disasm", "dis", "w", "write", "dump", "save", "load",
	"find", "reset", "quit", "exit",
}

// CompleteCmd returns every command name that starts with the command
// word the user has typed so far, for use as a liner.Completer.
func CompleteCmd(line string) []string {
	var matches []string
	for _, name := range commandNames {
		if strings.HasPrefix(name, line) {
			matches = append(matches, name)
		}
	}
	return matches
}
