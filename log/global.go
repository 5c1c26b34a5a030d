// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"sync"
	"sync/atomic"

	"github.com/cihub/seelog"
)

var global struct {
	once    sync.Once
	err     error
	channel atomic.Value // seelog.LoggerInterface
}

// InitGlobal creates the process-wide channel with the given name and
// pattern. The name is reserved like the name of any other channel, but the
// global channel cannot be retrieved with Get nor closed with Drop or
// DropAll; it lives until the process exits. Only the first call creates
// the channel, later calls return the error of the first call or
// ErrGlobalInitialized.
//
// Deprecated: create a Logger with New and pass it to its users.
func InitGlobal(name, pattern string) error {
	first := false
	global.once.Do(func() {
		first = true
		opts := &Options{Name: name, Pattern: pattern}
		if err := checkOptions(opts); err != nil {
			global.err = err
			return
		}
		global.err = register(name, nil, func() error {
			// callers use the engine directly
			channel, err := newChannel(opts, 0)
			if err != nil {
				return err
			}
			global.channel.Store(channel)
			return nil
		})
	})
	if first || global.err != nil {
		return global.err
	}
	return ErrGlobalInitialized
}

// Global returns the engine handle of the process-wide channel. Records
// written to it are not gated. Global panics with ErrGlobalUninitialized if
// InitGlobal did not succeed before.
//
// Deprecated: create a Logger with New and pass it to its users.
func Global() seelog.LoggerInterface {
	channel, ok := global.channel.Load().(seelog.LoggerInterface)
	if !ok {
		panic(ErrGlobalUninitialized)
	}
	return channel
}
