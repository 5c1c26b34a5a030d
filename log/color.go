// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wmbat/bazaar/util"
)

// Color modes of a channel.
const (
	ColorAuto   = "auto"   // color if the output is a terminal
	ColorAlways = "always" // always color
	ColorNever  = "never"  // never color
)

// palette holds the SGR codes used for the severities inside the %^...%$
// range of a pattern.
type palette [numSeverities]string

// defaultPalette matches the colors of the usual console loggers.
var defaultPalette = palette{
	InfoLvl:     "32",
	WarningLvl:  "33;1",
	CriticalLvl: "1;41",
	ErrorLvl:    "31;1",
}

func (p *palette) param() string {
	return strings.Join(p[:], "|")
}

// newPalette returns the default palette with the given severity colors
// replaced. Colors are hex triplets like "#ff8800" or "#f80".
func newPalette(colors map[string]string) (*palette, error) {
	p := defaultPalette
	for name, hex := range colors {
		sev, err := ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("log: color %q for %s: %w", hex, sev, err)
		}
		r, g, b := c.RGB255()
		p[sev] = fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
	}
	return &p, nil
}

// useColor decides whether a channel writing to w is colored.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "", ColorAuto:
		return util.IsTerminal(w), nil
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	}
	return false, fmt.Errorf("log: unknown color mode %q", mode)
}
