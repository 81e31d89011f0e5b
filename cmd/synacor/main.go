/*
 * synacor - Debugger/player entry point.
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
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	logger "synacor/internal/logger"
	"synacor/printer"
	"synacor/vm"
)

func main() {
	optDisasm := getopt.BoolLong("disassemble", 'd', "Start attached to the debugger shell")
	optLog := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp || len(getopt.Args()) == 0 {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLog != "" {
		var err error
		file, err = os.Create(*optLog)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer file.Close()
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, false)))

	imagePath := getopt.Args()[0]
	raw, err := os.ReadFile(imagePath)
	if err != nil {
		slog.Error("reading image", "error", err.Error())
		os.Exit(1)
	}

	image := vm.NewImage(raw)
	txt := printer.NewTextPrinter(os.Stdout)
	txt.Relaxed = !*optDisasm

	in := &lineInput{}
	m := vm.NewMachine(image, txt, in)

	slog.Info("synacor started", "image", imagePath, "disassemble", *optDisasm)

	if *optDisasm {
		runDebugger(m)
		return
	}
	in.meta = newMetaHandler(m)
	runPlay(m)
}
