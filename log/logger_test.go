// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, name, pattern string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l, err := NewWithOptions(&Options{
		Name:    name,
		Pattern: pattern,
		Color:   ColorNever,
		Output:  &buf,
	})
	require.NoError(t, err)
	t.Cleanup(l.Close)
	return l, &buf
}

// stringer counts how often it is formatted.
type stringer struct {
	calls *int
}

func (s stringer) String() string {
	*s.calls++
	return "value"
}

func TestScenario(t *testing.T) {
	l, buf := newTestLogger(t, "svc", "[%l] %v")

	l.Info("started")
	assert.Equal(t, "[info] started\n", buf.String())

	buf.Reset()
	err := l.Warningf("retrying %d", 3)
	assert.Equal(t, "[warning] retrying 3\n", buf.String())
	assert.EqualError(t, err, "retrying 3")

	buf.Reset()
	l.ShowWarnings(false)
	l.Warningf("retrying %d", 3)
	assert.Empty(t, buf.String())
}

func TestAllSeverities(t *testing.T) {
	l, buf := newTestLogger(t, "severities", "%L %l %v")
	tests := []struct {
		sev   Severity
		emit  func(format string, params ...interface{})
		plain func(v ...interface{})
		want  string
	}{
		{InfoLvl, l.Infof, l.Info, "I info"},
		{WarningLvl, func(f string, p ...interface{}) { l.Warningf(f, p...) }, func(v ...interface{}) { l.Warning(v...) }, "W warning"},
		{CriticalLvl, func(f string, p ...interface{}) { l.Criticalf(f, p...) }, func(v ...interface{}) { l.Critical(v...) }, "C critical"},
		{ErrorLvl, func(f string, p ...interface{}) { l.Errorf(f, p...) }, func(v ...interface{}) { l.Error(v...) }, "E error"},
	}
	for _, tt := range tests {
		buf.Reset()
		tt.emit("n=%d s=%s", 42, "x")
		assert.Equal(t, tt.want+" n=42 s=x\n", buf.String(), tt.sev.String())

		buf.Reset()
		tt.plain("a", 1)
		assert.Equal(t, tt.want+" a1\n", buf.String(), tt.sev.String())

		buf.Reset()
		l.Logf(tt.sev, "via %s", "Logf")
		assert.Equal(t, tt.want+" via Logf\n", buf.String(), tt.sev.String())

		buf.Reset()
		l.Log(tt.sev, "via Log")
		assert.Equal(t, tt.want+" via Log\n", buf.String(), tt.sev.String())
	}
}

func TestClosedGateDoesNotFormat(t *testing.T) {
	l, buf := newTestLogger(t, "closed-gates", "%v")
	for _, sev := range Severities() {
		calls := 0
		l.SetEnabled(sev, false)
		assert.False(t, l.Enabled(sev))
		l.Logf(sev, "%s", stringer{&calls})
		l.Log(sev, stringer{&calls})
		assert.Empty(t, buf.String(), sev.String())
		assert.Zero(t, calls, sev.String())

		l.SetEnabled(sev, true)
		l.Logf(sev, "%s", stringer{&calls})
		assert.Equal(t, "value\n", buf.String(), sev.String())
		assert.NotZero(t, calls, sev.String())
		buf.Reset()
	}
}

func TestGatesAreIndependent(t *testing.T) {
	l, buf := newTestLogger(t, "independent", "%l")
	l.ShowInfo(false)
	l.ShowCritical(false)
	for _, sev := range Severities() {
		l.Log(sev, "x")
	}
	assert.Equal(t, "warning\nerror\n", buf.String())

	buf.Reset()
	l.ShowInfo(true)
	l.ShowCritical(true)
	l.ShowWarnings(false)
	l.ShowErrors(false)
	for _, sev := range Severities() {
		l.Log(sev, "x")
	}
	assert.Equal(t, "info\ncritical\n", buf.String())
}

func TestToggleAffectsOnlyLaterCalls(t *testing.T) {
	l, buf := newTestLogger(t, "toggle", "%v")
	l.Info("one")
	l.ShowInfo(false)
	l.Info("two")
	l.ShowInfo(true)
	l.Info("three")
	assert.Equal(t, "one\nthree\n", buf.String())
}

func TestLoggersAreIndependent(t *testing.T) {
	a, bufA := newTestLogger(t, "independent-a", "%n %v")
	b, bufB := newTestLogger(t, "independent-b", "%n %v")
	a.ShowErrors(false)
	a.Error("dropped")
	b.Error("kept")
	assert.Empty(t, bufA.String())
	assert.Equal(t, "independent-b kept\n", bufB.String())
	assert.True(t, b.Enabled(ErrorLvl))
}

func TestReturnedErrors(t *testing.T) {
	l, buf := newTestLogger(t, "errors", "%v")
	boom := errors.New("boom")

	assert.Equal(t, boom, l.Error(boom))
	assert.Equal(t, boom, l.Warning(boom))
	assert.Equal(t, boom, l.Critical(boom))
	assert.Equal(t, "boom\nboom\nboom\n", buf.String())

	buf.Reset()
	l.ShowErrors(false)
	assert.Equal(t, boom, l.Error(boom))
	err := l.Errorf("code %d", 7)
	assert.EqualError(t, err, "code 7")
	assert.EqualError(t, l.Error("a", "b"), "ab")
	assert.Empty(t, buf.String())

	assert.NoError(t, l.Log(InfoLvl, "info returns nil"))
}

func TestZeroLoggerPanics(t *testing.T) {
	var l Logger
	assert.PanicsWithValue(t, ErrNoChannel, func() { l.Info("x") })
	assert.PanicsWithValue(t, ErrNoChannel, func() { l.Errorf("%d", 1) })
	assert.PanicsWithValue(t, ErrNoChannel, func() { l.Flush() })
	assert.PanicsWithValue(t, ErrNoChannel, func() { l.Name() })
	assert.PanicsWithValue(t, ErrNoChannel, func() { l.Enabled(InfoLvl) })
	assert.PanicsWithValue(t, ErrNoChannel, func() { l.SetEnabled(ErrorLvl, false) })
	assert.PanicsWithValue(t, ErrNoChannel, func() { l.ShowWarnings(true) })

	var nilLogger *Logger
	assert.PanicsWithValue(t, ErrNoChannel, func() { nilLogger.Warning("x") })
	assert.PanicsWithValue(t, ErrNoChannel, func() { nilLogger.Name() })
	assert.PanicsWithValue(t, ErrNoChannel, func() { nilLogger.Enabled(InfoLvl) })
	assert.PanicsWithValue(t, ErrNoChannel, func() { nilLogger.SetEnabled(InfoLvl, true) })
	assert.PanicsWithValue(t, ErrNoChannel, func() { nilLogger.ShowInfo(false) })
	assert.PanicsWithValue(t, ErrNoChannel, func() { nilLogger.ShowCritical(false) })
	assert.PanicsWithValue(t, ErrNoChannel, func() { nilLogger.ShowErrors(false) })
}

func TestUnknownSeverityPanics(t *testing.T) {
	l, _ := newTestLogger(t, "unknown-severity", "%v")
	assert.Panics(t, func() { l.Log(Severity(7), "x") })
	assert.Panics(t, func() { l.SetEnabled(Severity(-1), true) })
	assert.False(t, l.Enabled(Severity(9)))
}

func TestNewErrors(t *testing.T) {
	_, err := New("", "%v")
	assert.Equal(t, ErrEmptyName, err)

	_, err = NewWithOptions(&Options{Name: "bad-color", Color: "purple"})
	assert.Error(t, err)

	_, err = NewWithOptions(&Options{Name: "bad-mute", Mute: []string{"debug"}})
	assert.Error(t, err)
	_, ok := Get("bad-mute")
	assert.False(t, ok)

	// seelog rejects the unknown flag
	var buf bytes.Buffer
	_, err = NewWithOptions(&Options{Name: "bad-pattern", Pattern: "%t %v", Output: &buf})
	assert.True(t, errors.Is(err, ErrUnknownFlag), "got %v", err)
	_, ok = Get("bad-pattern")
	assert.False(t, ok)
	l, err := NewWithOptions(&Options{Name: "bad-pattern", Pattern: "%v", Output: &buf})
	require.NoError(t, err)
	l.Close()
}

func TestMuteOption(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOptions(&Options{
		Name:   "muted",
		Output: &buf,
		Mute:   []string{"info", "warn"},
	})
	require.NoError(t, err)
	defer l.Close()
	assert.False(t, l.Enabled(InfoLvl))
	assert.False(t, l.Enabled(WarningLvl))
	assert.True(t, l.Enabled(CriticalLvl))
	assert.True(t, l.Enabled(ErrorLvl))
}

func TestDefaultPattern(t *testing.T) {
	l, buf := newTestLogger(t, "default-pattern", "")
	l.Info("hello")
	assert.Equal(t, "[default-pattern] [info] hello\n", buf.String())
}

func TestColor(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOptions(&Options{
		Name:    "colored",
		Pattern: "%^%l%$ %v",
		Color:   ColorAlways,
		Colors:  map[string]string{"error": "#ff0000"},
		Output:  &buf,
	})
	require.NoError(t, err)
	defer l.Close()

	l.Info("started")
	assert.Equal(t, "\x1b[32minfo\x1b[0m started\n", buf.String())
	buf.Reset()
	l.Error("failed")
	assert.Equal(t, "\x1b[38;2;255;0;0merror\x1b[0m failed\n", buf.String())
}

func TestCloseReleasesName(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOptions(&Options{Name: "reuse", Output: &buf})
	require.NoError(t, err)

	_, err = NewWithOptions(&Options{Name: "reuse", Output: &buf})
	assert.True(t, errors.Is(err, ErrDuplicateChannel))

	l.Close()
	l.Close()
	l.Info("dropped after close")
	assert.Empty(t, buf.String())

	l, err = NewWithOptions(&Options{Name: "reuse", Output: &buf})
	require.NoError(t, err)
	l.Close()
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConcurrentUse(t *testing.T) {
	var buf syncBuffer
	l, err := NewWithOptions(&Options{Name: "concurrent", Pattern: "%l %v", Output: &buf})
	require.NoError(t, err)
	defer l.Close()

	const goroutines = 8
	const records = 50
	var wg sync.WaitGroup
	stop := make(chan struct{})
	go func() {
		for on := false; ; on = !on {
			select {
			case <-stop:
				return
			default:
				l.ShowWarnings(on)
			}
		}
	}()
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < records; j++ {
				l.Infof("%d-%d", i, j)
				l.Warningf("%d-%d", i, j)
			}
		}(i)
	}
	wg.Wait()
	close(stop)

	infos := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "info ") {
			infos++
		}
	}
	assert.Equal(t, goroutines*records, infos)
}
