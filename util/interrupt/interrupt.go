// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package interrupt allows to handle interrupts.
package interrupt

import (
	"os"
	"os/signal"
	"sync"

	"github.com/wmbat/bazaar/log"
)

// ShutdownChannel is used to signal that shutdown is in progress. It holds
// the first result sent with Shutdown, later results are dropped.
var ShutdownChannel = make(chan error, 1)

// Shutdown sends err on ShutdownChannel without blocking. Only the first
// result is kept.
func Shutdown(err error) {
	select {
	case ShutdownChannel <- err:
	default:
	}
}

// interruptChannel is used to receive SIGINT (Ctrl+C) signals.
var interruptChannel chan os.Signal

// addHandlerChannel is used to add an interrupt handler to the list of handlers
// to be invoked on SIGINT (Ctrl+C) signals.
var addHandlerChannel = make(chan func())

var (
	mu     sync.Mutex
	logger *log.Logger
)

// UseLogger sets the Logger the interrupt handler reports to. With a nil
// Logger nothing is reported.
func UseLogger(l *log.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func infof(format string, params ...interface{}) {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l != nil {
		l.Infof(format, params...)
	}
}

// mainInterruptHandler listens for SIGINT (Ctrl+C) signals on the
// interruptChannel and invokes the registered interruptCallbacks accordingly.
// It also listens for callback registration.  It must be run as a goroutine.
func mainInterruptHandler() {
	// interruptCallbacks is a list of callbacks to invoke when a
	// SIGINT (Ctrl+C) is received.
	var interruptCallbacks []func()

	for {
		select {
		case <-interruptChannel:
			infof("received SIGINT (Ctrl+C). Shutting down...")
			// newest first
			for i := len(interruptCallbacks) - 1; i >= 0; i-- {
				interruptCallbacks[i]()
			}

			// Signal the main goroutine to shutdown.
			Shutdown(nil)

		case handler := <-addHandlerChannel:
			interruptCallbacks = append(interruptCallbacks, handler)
		}
	}
}

// AddInterruptHandler adds a handler to call when a SIGINT (Ctrl+C) is
// received.
func AddInterruptHandler(handler func()) {
	// Create the channel and start the main interrupt handler which invokes
	// all other callbacks and exits if not already done.
	mu.Lock()
	if interruptChannel == nil {
		interruptChannel = make(chan os.Signal, 1)
		signal.Notify(interruptChannel, os.Interrupt)
		go mainInterruptHandler()
	}
	mu.Unlock()

	addHandlerChannel <- handler
}
