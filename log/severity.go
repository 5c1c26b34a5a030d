// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"strings"

	"github.com/cihub/seelog"
)

// Severity is the severity of a log record.
type Severity int

// The severities understood by a Logger. The numbering carries no meaning,
// every severity has its own gate.
const (
	InfoLvl Severity = iota
	WarningLvl
	CriticalLvl
	ErrorLvl
	numSeverities
)

var severityNames = [numSeverities]string{
	InfoLvl:     "info",
	WarningLvl:  "warning",
	CriticalLvl: "critical",
	ErrorLvl:    "error",
}

var severityLetters = [numSeverities]string{
	InfoLvl:     "I",
	WarningLvl:  "W",
	CriticalLvl: "C",
	ErrorLvl:    "E",
}

// Severities returns all severities in their numbering order.
func Severities() []Severity {
	return []Severity{InfoLvl, WarningLvl, CriticalLvl, ErrorLvl}
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s >= InfoLvl && s < numSeverities
}

func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Letter returns the one letter abbreviation of s.
func (s Severity) Letter() string {
	if !s.Valid() {
		return "?"
	}
	return severityLetters[s]
}

// ParseSeverity parses a severity name. It is case-insensitive and also
// accepts "warn" for WarningLvl.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return InfoLvl, nil
	case "warning", "warn":
		return WarningLvl, nil
	case "critical":
		return CriticalLvl, nil
	case "error":
		return ErrorLvl, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}

// fromSeelog maps a seelog level back to a severity. Levels the façade
// never emits (trace, debug, off) are reported as not found.
func fromSeelog(level seelog.LogLevel) (Severity, bool) {
	switch level {
	case seelog.InfoLvl:
		return InfoLvl, true
	case seelog.WarnLvl:
		return WarningLvl, true
	case seelog.CriticalLvl:
		return CriticalLvl, true
	case seelog.ErrorLvl:
		return ErrorLvl, true
	}
	return 0, false
}
