// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bzrlog writes records to a gated log channel from the command line.
package main

import (
	"os"

	"github.com/urfave/cli"
	"github.com/wmbat/bazaar/logengine"
	"github.com/wmbat/bazaar/release"
	"github.com/wmbat/bazaar/util"
	"github.com/wmbat/bazaar/util/interrupt"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

func bzrlogMain() error {
	le := logengine.New()
	defer le.Close()

	// add interrupt handler
	interrupt.AddInterruptHandler(func() {
		le.Close()
	})

	// start log engine
	go func() {
		interrupt.Shutdown(le.Start(os.Args))
	}()

	return <-interrupt.ShutdownChannel
}

func main() {
	// work around defer not working after os.Exit()
	if err := bzrlogMain(); err != nil {
		util.Fatal(err)
	}
}
