// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cihub/seelog"
)

// DefaultPattern is used for channels created without a pattern.
const DefaultPattern = "[%n] [%l] %v"

// fullPattern is what the %+ flag expands to.
const fullPattern = "[%Y-%m-%d %H:%M:%S.%e] [%n] [%l] %v"

// seelog verbs for the spdlog flags which map one to one.
var patternFlags = map[byte]string{
	'v': "%Msg",
	'l': "%Severity()",
	'L': "%Severity(short)",
	'Y': "%Date(2006)",
	'y': "%Date(06)",
	'C': "%Date(06)",
	'm': "%Date(01)",
	'd': "%Date(02)",
	'H': "%Date(15)",
	'I': "%Date(03)",
	'p': "%Date(PM)",
	'M': "%Date(04)",
	'S': "%Date(05)",
	'T': "%Date(15:04:05)",
	'D': "%Date(01/02/06)",
	'R': "%Date(15:04)",
	'r': "%Date(03:04:05 PM)",
	'c': "%Date(Mon Jan _2 15:04:05 2006)",
	'a': "%Date(Mon)",
	'A': "%Date(Monday)",
	'b': "%Date(Jan)",
	'h': "%Date(Jan)",
	'B': "%Date(January)",
	'z': "%Date(-07:00)",
	'e': "%Clock(ms)",
	'f': "%Clock(us)",
	'F': "%Clock(ns)",
	'E': "%Clock(epoch)",
	's': "%File",
	'g': "%FullPath",
	'@': "%File:%Line",
	'#': "%Line",
	'!': "%FuncShort",
	'%': "%%",
}

func init() {
	if err := seelog.RegisterCustomFormatter("Severity", severityFormatter); err != nil {
		panic(err)
	}
	if err := seelog.RegisterCustomFormatter("SeverityColor", severityColorFormatter); err != nil {
		panic(err)
	}
	if err := seelog.RegisterCustomFormatter("Clock", clockFormatter); err != nil {
		panic(err)
	}
}

// clockFormatter renders the sub-second part of the call time ("ms", "us",
// "ns") without a leading dot, or the seconds since the epoch ("epoch").
func clockFormatter(param string) seelog.FormatterFunc {
	return func(message string, level seelog.LogLevel, context seelog.LogContextInterface) interface{} {
		var t time.Time
		if context != nil {
			t = context.CallTime()
		} else {
			t = time.Now()
		}
		switch param {
		case "ms":
			return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
		case "us":
			return fmt.Sprintf("%06d", t.Nanosecond()/int(time.Microsecond))
		case "ns":
			return fmt.Sprintf("%09d", t.Nanosecond())
		}
		return strconv.FormatInt(t.Unix(), 10)
	}
}

// severityFormatter renders the severity of a record. The parameter "short"
// selects the one letter form.
func severityFormatter(param string) seelog.FormatterFunc {
	return func(message string, level seelog.LogLevel, context seelog.LogContextInterface) interface{} {
		sev, ok := fromSeelog(level)
		if !ok {
			name := level.String()
			if param == "short" && name != "" {
				return strings.ToUpper(name[:1])
			}
			return name
		}
		if param == "short" {
			return sev.Letter()
		}
		return sev.String()
	}
}

// severityColorFormatter emits the ANSI escape sequence selected for the
// severity of a record. The parameter holds the SGR codes of all severities
// separated by '|', in severity order.
func severityColorFormatter(param string) seelog.FormatterFunc {
	codes := strings.Split(param, "|")
	return func(message string, level seelog.LogLevel, context seelog.LogContextInterface) interface{} {
		sev, ok := fromSeelog(level)
		if !ok || int(sev) >= len(codes) || codes[sev] == "" {
			return ""
		}
		return "\x1b[" + codes[sev] + "m"
	}
}

// translatePattern converts an spdlog style pattern into a seelog format for
// the channel name. If colors is nil the color range flags %^ and %$ are
// dropped. Flags without a seelog counterpart (like %t, the thread id) are
// reported with an error wrapping ErrUnknownFlag. Every record ends with a
// newline.
func translatePattern(name, pattern string, colors *palette) (string, error) {
	var b strings.Builder
	if err := writePattern(&b, name, pattern, colors); err != nil {
		return "", err
	}
	b.WriteString("%n")
	return b.String(), nil
}

func writePattern(b *strings.Builder, name, pattern string, colors *palette) error {
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i == len(pattern)-1 {
			b.WriteString("%%")
			break
		}
		i++
		flag := pattern[i]
		if verb, ok := patternFlags[flag]; ok {
			b.WriteString(verb)
			continue
		}
		switch flag {
		case 'n':
			b.WriteString(escapeFormat(name))
		case 'P':
			b.WriteString(strconv.Itoa(os.Getpid()))
		case '+':
			if err := writePattern(b, name, fullPattern, colors); err != nil {
				return err
			}
		case '^':
			if colors != nil {
				b.WriteString("%SeverityColor(" + colors.param() + ")")
			}
		case '$':
			if colors != nil {
				b.WriteString("%EscM(0)")
			}
		default:
			return fmt.Errorf("%w: %%%c in %q", ErrUnknownFlag, flag, pattern)
		}
	}
	return nil
}

// escapeFormat escapes s for literal use in a seelog format.
func escapeFormat(s string) string {
	return strings.Replace(s, "%", "%%", -1)
}
