/*
 * synacor - Machine image: memory, registers, stack, and input queue.
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

package vm

import "io"

// NumRegs is the fixed register count of the ISA.
const NumRegs = 8

// Image holds the full mutable state of a running machine plus the
// immutable raw bytes it was constructed from.
type Image struct {
	Raw     []byte
	Mem     []int16
	Reg     [NumRegs]int16
	Stack   []int16
	IP      int
	InQueue []byte // reversed: back of slice is the next character to deliver
}

// NewImage constructs a fresh image from a raw program byte image.
func NewImage(raw []byte) *Image {
	im := &Image{Raw: raw}
	im.Reset()
	return im
}

// Reset reconstructs Mem from Raw and clears Reg, Stack, IP, and InQueue.
func (im *Image) Reset() {
	im.Mem = UnpackWords(im.Raw)
	im.Reg = [NumRegs]int16{}
	im.Stack = im.Stack[:0]
	im.IP = 0
	im.InQueue = im.InQueue[:0]
}

// DumpMem writes Mem as a raw little-endian word image.
func (im *Image) DumpMem(w io.Writer) error {
	_, err := w.Write(PackWords(im.Mem))
	return err
}

// QueueInput appends a host-provided line to the input queue: a
// newline followed by the reversed line, so that popping from the back
// of InQueue yields the line's characters in order, followed by '\n'.
func (im *Image) QueueInput(line string) {
	im.InQueue = append(im.InQueue, '\n')
	for i := len(line) - 1; i >= 0; i-- {
		im.InQueue = append(im.InQueue, line[i])
	}
}

// PopInput removes and returns the next pending input character.
// The second return value is false when the queue is empty.
func (im *Image) PopInput() (byte, bool) {
	n := len(im.InQueue)
	if n == 0 {
		return 0, false
	}
	c := im.InQueue[n-1]
	im.InQueue = im.InQueue[:n-1]
	return c, true
}
