// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

// Package ulog is the structured logger the rest of the module uses for
// diagnostic output (decode/parse failures, CLI trace passthrough): a small,
// level-filtered wrapper around log/slog in the shape of go-ethereum's log
// package, with a colorized terminal handler when stderr is a tty.
package ulog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level mirrors go-ethereum's log.Level: a small fixed severity scale,
// lowest-first, independent of slog's wider integer space.
type Level int

const (
	LevelCrit Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelCrit:
		return "CRIT"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "????"
	}
}

var levelColor = map[Level]*color.Color{
	LevelCrit:  color.New(color.FgMagenta, color.Bold),
	LevelError: color.New(color.FgRed),
	LevelWarn:  color.New(color.FgYellow),
	LevelInfo:  color.New(color.FgGreen),
	LevelDebug: color.New(color.FgCyan),
	LevelTrace: color.New(color.FgWhite),
}

// Logger is the interface the rest of the module logs through, matching
// go-ethereum's log.Logger shape: one method per level, each taking a
// message and an even-length list of key/value pairs.
type Logger interface {
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
	With(ctx ...interface{}) Logger
}

type logger struct {
	handler *handler
	ctx     []interface{}
}

// handler holds the mutable, shared state of a logger tree: the output
// writer, the level filter, and whether to colorize (set once at
// construction, read freely after).
type handler struct {
	mu      sync.Mutex
	out     io.Writer
	level   atomic.Int32
	color   bool
	withLoc bool
}

// NewTerminalLogger builds a Logger that writes human-readable, optionally
// colorized lines to w, filtered to level and coarser. Caller location is
// attached to Crit records via go-stack, mirroring go-ethereum's practice of
// surfacing a frame for log lines severe enough to warrant one.
func NewTerminalLogger(w io.Writer, level Level) Logger {
	h := &handler{out: w, withLoc: true}
	h.level.Store(int32(level))
	if f, ok := w.(*os.File); ok {
		h.color = isatty.IsTerminal(f.Fd())
		if h.color {
			h.out = colorable.NewColorable(f)
		}
	}
	return &logger{handler: h}
}

// NewJSONLogger builds a Logger that writes one JSON object per record to w,
// for when output is consumed by another program rather than a terminal.
func NewJSONLogger(w io.Writer, level Level) Logger {
	h := &handler{out: w}
	h.level.Store(int32(level))
	slogger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.Level(-int(level) * 4)}))
	return &jsonLogger{slogger: slogger, handler: h}
}

type jsonLogger struct {
	slogger *slog.Logger
	handler *handler
	ctx     []interface{}
}

func (j *jsonLogger) log(level Level, msg string, ctx []interface{}) {
	if Level(j.handler.level.Load()) < level {
		return
	}
	all := append(append([]interface{}{}, j.ctx...), ctx...)
	j.slogger.Log(context.Background(), slogLevel(level), msg, all...)
}

func (j *jsonLogger) Trace(msg string, ctx ...interface{}) { j.log(LevelTrace, msg, ctx) }
func (j *jsonLogger) Debug(msg string, ctx ...interface{}) { j.log(LevelDebug, msg, ctx) }
func (j *jsonLogger) Info(msg string, ctx ...interface{})  { j.log(LevelInfo, msg, ctx) }
func (j *jsonLogger) Warn(msg string, ctx ...interface{})  { j.log(LevelWarn, msg, ctx) }
func (j *jsonLogger) Error(msg string, ctx ...interface{}) { j.log(LevelError, msg, ctx) }
func (j *jsonLogger) Crit(msg string, ctx ...interface{})  { j.log(LevelCrit, msg, ctx) }
func (j *jsonLogger) With(ctx ...interface{}) Logger {
	return &jsonLogger{slogger: j.slogger, handler: j.handler, ctx: append(append([]interface{}{}, j.ctx...), ctx...)}
}

func slogLevel(l Level) slog.Level {
	return slog.Level(-int(l) * 4)
}

func (l *logger) log(level Level, msg string, ctx []interface{}) {
	if Level(l.handler.level.Load()) < level {
		return
	}
	l.handler.mu.Lock()
	defer l.handler.mu.Unlock()

	line := fmt.Sprintf("%-5s %s", level, msg)
	if l.handler.color {
		line = levelColor[level].Sprintf("%-5s", level.String()) + " " + msg
	}
	all := append(append([]interface{}{}, l.ctx...), ctx...)
	for i := 0; i+1 < len(all); i += 2 {
		line += fmt.Sprintf(" %v=%v", all[i], all[i+1])
	}
	if level == LevelCrit && l.handler.withLoc {
		line += fmt.Sprintf(" loc=%v", callerFrame())
	}
	fmt.Fprintln(l.handler.out, line)
}

// callerFrame returns the first stack frame outside this package, the
// go-stack analogue of go-ethereum's log caller annotation.
func callerFrame() stack.Call {
	trace := stack.Trace().TrimRuntime()
	for _, c := range trace {
		if !strings.HasPrefix(c.Frame().Function, "github.com/probechain/uplc/internal/ulog.") {
			return c
		}
	}
	return stack.Call{}
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.log(LevelTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.log(LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.log(LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.log(LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.log(LevelError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.log(LevelCrit, msg, ctx) }
func (l *logger) With(ctx ...interface{}) Logger {
	return &logger{handler: l.handler, ctx: append(append([]interface{}{}, l.ctx...), ctx...)}
}

var root atomic.Pointer[Logger]

func init() {
	var l Logger = NewTerminalLogger(os.Stderr, LevelInfo)
	root.Store(&l)
}

// Root returns the module's default logger.
func Root() Logger { return *root.Load() }

// SetDefault replaces the module's default logger, e.g. to raise verbosity
// or redirect to a file under CLI control (spec §6).
func SetDefault(l Logger) { root.Store(&l) }

func Trace(msg string, ctx ...interface{}) { Root().Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { Root().Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { Root().Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { Root().Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { Root().Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { Root().Crit(msg, ctx...) }
