// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/cihub/seelog"
)

// Frames between the caller and seelog: the emit method and Logger.emit.
const additionalStackDepth = 2

// Logger writes records to one named channel. Every severity has a gate
// which is open after construction.
//
// The zero value has no channel and must not be used; its methods panic
// with ErrNoChannel. A Logger is safe for concurrent use.
type Logger struct {
	name    string
	channel seelog.LoggerInterface
	gates   [numSeverities]atomic.Bool
}

// New creates a Logger with a console channel named name which renders
// records with pattern. An empty pattern selects DefaultPattern. The output
// is colored if stdout is a terminal. If a channel with the same name exists
// an error wrapping ErrDuplicateChannel is returned.
func New(name, pattern string) (*Logger, error) {
	return NewWithOptions(&Options{Name: name, Pattern: pattern})
}

// NewWithOptions creates a Logger according to opts. See Options for the
// defaults.
func NewWithOptions(opts *Options) (*Logger, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	l := &Logger{name: opts.Name}
	for i := range l.gates {
		l.gates[i].Store(true)
	}
	for _, name := range opts.Mute {
		sev, err := ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		l.gates[sev].Store(false)
	}
	err := register(opts.Name, l, func() error {
		channel, err := newChannel(opts, additionalStackDepth)
		if err != nil {
			return err
		}
		l.channel = channel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func checkOptions(opts *Options) error {
	if opts.Name == "" {
		return ErrEmptyName
	}
	return opts.Validate()
}

// newChannel creates the seelog channel described by opts. depth is the
// number of frames between the caller and the seelog logging method.
func newChannel(opts *Options, depth int) (seelog.LoggerInterface, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	color, err := useColor(opts.Color, out)
	if err != nil {
		return nil, err
	}
	var colors *palette
	if color {
		colors, err = newPalette(opts.Colors)
		if err != nil {
			return nil, err
		}
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	format, err := translatePattern(opts.Name, pattern, colors)
	if err != nil {
		return nil, err
	}
	// seelog closes outputs which are io.Closers, stdout must stay open
	channel, err := seelog.LoggerFromWriterWithMinLevelAndFormat(writer{out}, seelog.TraceLvl, format)
	if err != nil {
		return nil, err
	}
	if err := channel.SetAdditionalStackDepth(depth); err != nil {
		channel.Close()
		return nil, err
	}
	return channel, nil
}

// Name returns the channel name of l.
func (l *Logger) Name() string {
	l.mustChannel()
	return l.name
}

// SetEnabled opens or closes the gate of severity sev. The change applies
// to records emitted afterwards.
func (l *Logger) SetEnabled(sev Severity, enabled bool) {
	l.mustChannel()
	if !sev.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownSeverity, int(sev)))
	}
	l.gates[sev].Store(enabled)
}

// Enabled reports whether the gate of severity sev is open.
func (l *Logger) Enabled(sev Severity) bool {
	l.mustChannel()
	if !sev.Valid() {
		return false
	}
	return l.gates[sev].Load()
}

// ShowInfo opens or closes the info gate.
func (l *Logger) ShowInfo(show bool) { l.SetEnabled(InfoLvl, show) }

// ShowWarnings opens or closes the warning gate.
func (l *Logger) ShowWarnings(show bool) { l.SetEnabled(WarningLvl, show) }

// ShowCritical opens or closes the critical gate.
func (l *Logger) ShowCritical(show bool) { l.SetEnabled(CriticalLvl, show) }

// ShowErrors opens or closes the error gate.
func (l *Logger) ShowErrors(show bool) { l.SetEnabled(ErrorLvl, show) }

// Info formats message using the default formats for its operands and
// writes it to the channel with severity info.
func (l *Logger) Info(v ...interface{}) {
	l.emit(InfoLvl, &message{params: v})
}

// Infof formats message according to format specifier and writes it to the
// channel with severity info.
func (l *Logger) Infof(format string, params ...interface{}) {
	l.emit(InfoLvl, &message{format: format, params: params, formatted: true})
}

// Warning formats message using the default formats for its operands and
// writes it to the channel with severity warning. The message is returned
// as an error. If the only operand is an error, it is returned unchanged.
func (l *Logger) Warning(v ...interface{}) error {
	return l.emit(WarningLvl, &message{params: v})
}

// Warningf formats message according to format specifier and writes it to
// the channel with severity warning. The message is returned as an error.
func (l *Logger) Warningf(format string, params ...interface{}) error {
	return l.emit(WarningLvl, &message{format: format, params: params, formatted: true})
}

// Critical formats message using the default formats for its operands and
// writes it to the channel with severity critical. The message is returned
// as an error. If the only operand is an error, it is returned unchanged.
func (l *Logger) Critical(v ...interface{}) error {
	return l.emit(CriticalLvl, &message{params: v})
}

// Criticalf formats message according to format specifier and writes it to
// the channel with severity critical. The message is returned as an error.
func (l *Logger) Criticalf(format string, params ...interface{}) error {
	return l.emit(CriticalLvl, &message{format: format, params: params, formatted: true})
}

// Error formats message using the default formats for its operands and
// writes it to the channel with severity error. The message is returned as
// an error. If the only operand is an error, it is returned unchanged.
func (l *Logger) Error(v ...interface{}) error {
	return l.emit(ErrorLvl, &message{params: v})
}

// Errorf formats message according to format specifier and writes it to
// the channel with severity error. The message is returned as an error.
func (l *Logger) Errorf(format string, params ...interface{}) error {
	return l.emit(ErrorLvl, &message{format: format, params: params, formatted: true})
}

// Log is the severity parameterized form of Info, Warning, Critical and
// Error. For severity info the returned error is always nil.
func (l *Logger) Log(sev Severity, v ...interface{}) error {
	return l.emit(sev, &message{params: v})
}

// Logf is the severity parameterized form of Infof, Warningf, Criticalf and
// Errorf. For severity info the returned error is always nil.
func (l *Logger) Logf(sev Severity, format string, params ...interface{}) error {
	return l.emit(sev, &message{format: format, params: params, formatted: true})
}

// Flush flushes all the records of the channel.
func (l *Logger) Flush() {
	l.mustChannel().Flush()
}

// Close flushes and closes the channel and releases its name. Records
// emitted after Close are dropped by the channel. Close can be called
// multiple times.
func (l *Logger) Close() {
	ch := l.mustChannel()
	unregister(l)
	if !ch.Closed() {
		ch.Close()
	}
}

func (l *Logger) mustChannel() seelog.LoggerInterface {
	if l == nil || l.channel == nil {
		panic(ErrNoChannel)
	}
	return l.channel
}

// emit checks the gate of sev and hands m to the channel. The returned
// error is nil for info records.
func (l *Logger) emit(sev Severity, m *message) error {
	ch := l.mustChannel()
	if !sev.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownSeverity, int(sev)))
	}
	if !l.gates[sev].Load() {
		if sev == InfoLvl {
			return nil
		}
		return m.err()
	}
	var err error
	switch sev {
	case InfoLvl:
		if m.formatted {
			ch.Infof(m.format, m.params...)
		} else {
			ch.Info(m.params...)
		}
		return nil
	case WarningLvl:
		if m.formatted {
			err = ch.Warnf(m.format, m.params...)
		} else {
			err = ch.Warn(m.params...)
		}
	case CriticalLvl:
		if m.formatted {
			err = ch.Criticalf(m.format, m.params...)
		} else {
			err = ch.Critical(m.params...)
		}
	case ErrorLvl:
		if m.formatted {
			err = ch.Errorf(m.format, m.params...)
		} else {
			err = ch.Error(m.params...)
		}
	}
	if wrapped := m.operandError(); wrapped != nil {
		return wrapped
	}
	return err
}

// writer hides the Close method of a channel output.
type writer struct {
	io.Writer
}

// message is a record before formatting. As an error it formats itself on
// demand, so records dropped by a closed gate are never formatted.
type message struct {
	format    string
	params    []interface{}
	formatted bool
}

func (m *message) Error() string {
	if m.formatted {
		return fmt.Sprintf(m.format, m.params...)
	}
	return fmt.Sprint(m.params...)
}

// operandError returns the only operand of an unformatted message if it is
// an error.
func (m *message) operandError() error {
	if m.formatted || len(m.params) != 1 {
		return nil
	}
	err, _ := m.params[0].(error)
	return err
}

func (m *message) err() error {
	if err := m.operandError(); err != nil {
		return err
	}
	return m
}
