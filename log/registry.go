// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"sort"
	"sync"
)

// registry maps channel names to their loggers. The name of the global
// channel maps to nil: it is reserved, but there is no Logger to hand out.
var registry = struct {
	sync.Mutex
	loggers map[string]*Logger
}{loggers: make(map[string]*Logger)}

// register adds l under name after create succeeded. A nil l only reserves
// the name. create runs with the registry locked, so two channels with the
// same name are never created.
func register(name string, l *Logger, create func() error) error {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.loggers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateChannel, name)
	}
	if err := create(); err != nil {
		return err
	}
	registry.loggers[name] = l
	return nil
}

func unregister(l *Logger) {
	registry.Lock()
	defer registry.Unlock()
	if l != nil && registry.loggers[l.name] == l {
		delete(registry.loggers, l.name)
	}
}

// Get returns the Logger of the channel with the given name. The global
// channel has no Logger and is not returned.
func Get(name string) (*Logger, bool) {
	registry.Lock()
	defer registry.Unlock()
	l := registry.loggers[name]
	return l, l != nil
}

// Names returns the names of all channels, sorted.
func Names() []string {
	registry.Lock()
	defer registry.Unlock()
	names := make([]string, 0, len(registry.loggers))
	for name := range registry.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Drop closes the channel with the given name, if any. The global channel
// is never closed.
func Drop(name string) {
	if l, ok := Get(name); ok {
		l.Close()
	}
}

// DropAll closes all channels except the global one.
func DropAll() {
	for _, name := range Names() {
		Drop(name)
	}
}
