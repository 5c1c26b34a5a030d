// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util contains utility functions for Bazaar.
package util

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// Fatal prints err to stderr and exits the process with exit code 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], err)
	os.Exit(1)
}

// IsTerminal reports whether w is a file descriptor connected to a
// terminal.
func IsTerminal(w io.Writer) bool {
	fp, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return terminal.IsTerminal(int(fp.Fd()))
}
