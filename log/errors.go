// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
)

// ErrEmptyName is returned if a channel is created without a name.
var ErrEmptyName = errors.New("log: channel name is empty")

// ErrDuplicateChannel is returned if a channel with the same name already
// exists in the process.
var ErrDuplicateChannel = errors.New("log: duplicate channel name")

// ErrNoChannel is raised (as a panic) when a Logger which has not been
// created with New or NewWithOptions is used to emit a record.
var ErrNoChannel = errors.New("log: logger has no channel")

// ErrUnknownSeverity is returned if a severity is out of range or cannot be
// parsed.
var ErrUnknownSeverity = errors.New("log: unknown severity")

// ErrGlobalInitialized is returned by InitGlobal if the global channel has
// already been initialized.
var ErrGlobalInitialized = errors.New("log: global channel already initialized")

// ErrGlobalUninitialized is raised (as a panic) by Global if InitGlobal has
// not been called successfully before.
var ErrGlobalUninitialized = errors.New("log: global channel not initialized")

// ErrUnknownFlag is returned if a pattern contains a flag which cannot be
// rendered.
var ErrUnknownFlag = errors.New("log: unknown pattern flag")
