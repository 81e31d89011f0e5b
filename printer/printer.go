/*
 * synacor - Text printer: buffered output with ANSI color bracketing.
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

// Package printer renders guest-emitted characters to an io.Writer,
// optionally bracketing runs of output with ANSI color codes.
package printer

import (
	"fmt"
	"io"
)

const (
	colorStart = "\x1b[95m"
	colorEnd   = "\x1b[0m"
)

// TextPrinter implements vm.Printer. In relaxed mode (the default
// during play) a maximal run of characters up to the next newline is
// bracketed once; in strict mode every character is bracketed
// individually.
type TextPrinter struct {
	Out           io.Writer
	Relaxed       bool
	outputStarted bool
}

// NewTextPrinter constructs a relaxed-mode printer writing to out.
func NewTextPrinter(out io.Writer) *TextPrinter {
	return &TextPrinter{Out: out, Relaxed: true}
}

// PrintChar emits one guest character.
func (p *TextPrinter) PrintChar(c byte) {
	if p.Relaxed {
		if c == '\n' {
			if p.outputStarted {
				fmt.Fprint(p.Out, colorEnd)
			}
			fmt.Fprintf(p.Out, "%c", c)
			p.outputStarted = false
			return
		}
		if !p.outputStarted {
			fmt.Fprint(p.Out, colorStart)
		}
		fmt.Fprintf(p.Out, "%c", c)
		p.outputStarted = true
		return
	}
	fmt.Fprintf(p.Out, "%s%c%s", colorStart, c, colorEnd)
}

// Flush closes an open relaxed-mode run, if any.
func (p *TextPrinter) Flush() {
	if p.Relaxed && p.outputStarted {
		fmt.Fprint(p.Out, colorEnd)
		p.outputStarted = false
	}
}
