/*
 * synacor-dis - Standalone stream disassembler.
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
	"fmt"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"synacor/disassembler"
	"synacor/vm"
)

func parseRange(s string) (*disassembler.AddrRange, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("raw-range must be START-END, got %q", s)
	}
	start, err := strconv.ParseInt(parts[0], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("raw-range start: %w", err)
	}
	end, err := strconv.ParseInt(parts[1], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("raw-range end: %w", err)
	}
	return &disassembler.AddrRange{Start: int(start), End: int(end)}, nil
}

func main() {
	optRawRange := getopt.StringLong("raw-range", 'r', "", "keep raw data in range START-END (hex)")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp || len(getopt.Args()) == 0 {
		getopt.Usage()
		os.Exit(0)
	}

	rawRange, err := parseRange(*optRawRange)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(getopt.Args()[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mem := vm.UnpackWords(raw)
	for _, line := range disassembler.DisassembleStream(mem, 0, rawRange) {
		fmt.Println(line)
	}
}
