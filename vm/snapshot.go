/*
 * synacor - Snapshot serialization: magic-tagged machine state.
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

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// SnapshotMagic is the fixed 4-byte tag at the start of every snapshot.
const SnapshotMagic = "SNCR"

// ErrBadMagic is returned when a snapshot's magic tag does not match.
var ErrBadMagic = errors.New("snapshot: bad magic")

func writeWordList(w io.Writer, words []int16) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(words)*2)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, words)
}

func readWordList(r io.Reader) ([]int16, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	words := make([]int16, n/2)
	if err := binary.Read(r, binary.LittleEndian, words); err != nil {
		return nil, err
	}
	return words, nil
}

// WriteSnapshot serializes ip, reg[0..7], mem, and stack as three
// length-prefixed little-endian word arrays behind the "SNCR" magic.
func (im *Image) WriteSnapshot(w io.Writer) error {
	if _, err := io.WriteString(w, SnapshotMagic); err != nil {
		return err
	}
	head := make([]int16, 0, NumRegs+1)
	head = append(head, int16(im.IP))
	head = append(head, im.Reg[:]...)
	if err := writeWordList(w, head); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if err := writeWordList(w, im.Mem); err != nil {
		return fmt.Errorf("snapshot: write mem: %w", err)
	}
	if err := writeWordList(w, im.Stack); err != nil {
		return fmt.Errorf("snapshot: write stack: %w", err)
	}
	return nil
}

// ReadSnapshot reconstructs an Image from a snapshot stream. The
// Image's Raw field is left nil; Reset after a load rebuilds Mem from
// whatever Raw the caller assigns, so callers that need reset-to-raw
// to keep working should preserve the original Raw across a load.
func ReadSnapshot(r io.Reader) (*Image, error) {
	magic := make([]byte, len(SnapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("snapshot: read magic: %w", err)
	}
	if string(magic) != SnapshotMagic {
		return nil, ErrBadMagic
	}
	head, err := readWordList(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if len(head) != NumRegs+1 {
		return nil, fmt.Errorf("snapshot: malformed header: got %d words, want %d", len(head), NumRegs+1)
	}
	mem, err := readWordList(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read mem: %w", err)
	}
	stack, err := readWordList(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read stack: %w", err)
	}

	im := &Image{Mem: mem, Stack: stack, IP: int(head[0])}
	copy(im.Reg[:], head[1:])
	return im, nil
}
