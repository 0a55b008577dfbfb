// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx implements the engine's console log surface: six message
// levels over a ring of ANSI colors, collapsing to plain text when the
// output is not a terminal. Built beside gosl/io's own color-printer
// family (io.Pfred, io.PfGreen, io.Pfcyan, ...), which has no leveled,
// tty-stripping front end of its own.
package logx

import (
	"fmt"
	stdio "io"
	"os"

	gslio "github.com/cpmech/gosl/io"
	"golang.org/x/term"
)

// Level names the six message levels the log surface exposes.
type Level int

const (
	Msg Level = iota
	BMsg
	Warn
	Error
	Ok
	BOk
)

// colorRing holds 18 ANSI escape codes; levels index into it by a fixed
// slot, leaving the rest available for callers that want ad hoc color
// (e.g. per-isotope diagnostic banners).
var colorRing = [18]string{
	"\x1b[0m", "\x1b[1m", "\x1b[2m", "\x1b[4m",
	"\x1b[30m", "\x1b[31m", "\x1b[32m", "\x1b[33m",
	"\x1b[34m", "\x1b[35m", "\x1b[36m", "\x1b[37m",
	"\x1b[90m", "\x1b[91m", "\x1b[92m", "\x1b[93m",
	"\x1b[94m", "\x1b[95m",
}

const reset = 0

var levelSlot = map[Level]int{
	Msg:   0,  // plain
	BMsg:  1,  // bold plain
	Warn:  7,  // yellow
	Error: 5,  // red
	Ok:    6,  // green
	BOk:   14, // bold-ish bright green
}

// Logger writes leveled, optionally colored messages to one or more
// writers: stdout, plus an optional duplicate file via Tee.
type Logger struct {
	out      stdio.Writer
	colorize bool
}

// New builds a Logger over w. If w is os.Stdout and it is not a terminal,
// every color code collapses to the empty string.
func New(w stdio.Writer) *Logger {
	colorize := true
	if f, ok := w.(*os.File); ok {
		colorize = term.IsTerminal(int(f.Fd()))
	} else {
		colorize = false
	}
	return &Logger{out: w, colorize: colorize}
}

// Tee duplicates every message to an additional writer, e.g. a log file.
func (l *Logger) Tee(w stdio.Writer) *Logger {
	return &Logger{out: stdio.MultiWriter(l.out, w), colorize: l.colorize}
}

func (l *Logger) color(lvl Level) string {
	if !l.colorize {
		return ""
	}
	return colorRing[levelSlot[lvl]]
}

func (l *Logger) resetCode() string {
	if !l.colorize {
		return ""
	}
	return colorRing[reset]
}

// Logf prints one line at the given level, formatted with gosl's io.Sf.
func (l *Logger) Logf(lvl Level, format string, args ...interface{}) {
	msg := gslio.Sf(format, args...)
	fmt.Fprintf(l.out, "%s%s%s\n", l.color(lvl), msg, l.resetCode())
}

func (l *Logger) Msg(format string, args ...interface{})   { l.Logf(Msg, format, args...) }
func (l *Logger) BMsg(format string, args ...interface{})  { l.Logf(BMsg, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.Logf(Warn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.Logf(Error, format, args...) }
func (l *Logger) Ok(format string, args ...interface{})    { l.Logf(Ok, format, args...) }
func (l *Logger) BOk(format string, args ...interface{})   { l.Logf(BOk, format, args...) }
