// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logengine implements the command engine for bzrlog.
package logengine

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/structs"
	"github.com/urfave/cli"
	"github.com/wmbat/bazaar/def/version"
	"github.com/wmbat/bazaar/log"
	"github.com/wmbat/bazaar/util/interrupt"
)

const defaultName = "bzrlog"

// LogEngine abstracts a bzrlog command engine.
type LogEngine struct {
	app       *cli.App
	stdin     io.Reader
	opts      *log.Options
	logger    *log.Logger
	closeOnce sync.Once
}

// New returns a new LogEngine.
func New() *LogEngine {
	le := &LogEngine{stdin: os.Stdin}
	le.app = cli.NewApp()
	le.app.Name = defaultName
	le.app.Usage = "write records to a gated log channel"
	le.app.Version = version.Number
	le.app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "read channel options from YAML file",
		},
		cli.StringFlag{
			Name:  "name",
			Value: defaultName,
			Usage: "channel name",
		},
		cli.StringFlag{
			Name:  "pattern",
			Value: log.DefaultPattern,
			Usage: "display pattern",
		},
		cli.StringFlag{
			Name:  "color",
			Value: log.ColorAuto,
			Usage: "color mode {auto, always, never}",
		},
		cli.StringSliceFlag{
			Name:  "mute",
			Usage: "start with the gate of this severity closed (repeatable)",
		},
	}
	le.app.Before = le.prepare
	le.app.Commands = []cli.Command{
		{
			Name:      "emit",
			Usage:     "Write one record",
			ArgsUsage: "SEVERITY MESSAGE...",
			Action:    le.emit,
		},
		{
			Name:   "pipe",
			Usage:  "Write one record per line of stdin ('SEVERITY MESSAGE')",
			Action: le.pipe,
		},
		{
			Name:   "repl",
			Usage:  "Interactive prompt",
			Action: le.repl,
		},
		{
			Name:   "options",
			Usage:  "Show effective channel options and gates",
			Action: le.options,
		},
	}
	return le
}

// Start runs the engine with the given command line.
func (le *LogEngine) Start(args []string) error {
	return le.app.Run(args)
}

// Close flushes and closes the channel of the engine.
func (le *LogEngine) Close() {
	le.closeOnce.Do(func() {
		interrupt.UseLogger(nil)
		if le.logger != nil {
			le.logger.Close()
		}
	})
}

func (le *LogEngine) prepare(c *cli.Context) error {
	opts := &log.Options{}
	if path := c.GlobalString("config"); path != "" {
		var err error
		opts, err = log.LoadOptions(path)
		if err != nil {
			return err
		}
	}
	if c.GlobalIsSet("name") || opts.Name == "" {
		opts.Name = c.GlobalString("name")
	}
	if c.GlobalIsSet("pattern") || opts.Pattern == "" {
		opts.Pattern = c.GlobalString("pattern")
	}
	if c.GlobalIsSet("color") || opts.Color == "" {
		opts.Color = c.GlobalString("color")
	}
	opts.Mute = append(opts.Mute, c.GlobalStringSlice("mute")...)
	opts.Output = c.App.Writer
	l, err := log.NewWithOptions(opts)
	if err != nil {
		return err
	}
	le.opts = opts
	le.logger = l
	interrupt.UseLogger(l)
	return nil
}

func (le *LogEngine) emit(c *cli.Context) error {
	if len(c.Args()) < 1 {
		return fmt.Errorf("logengine: severity missing")
	}
	sev, err := log.ParseSeverity(c.Args().First())
	if err != nil {
		return err
	}
	le.logger.Log(sev, strings.Join(c.Args().Tail(), " "))
	return nil
}

// parseRecord splits a line of the form 'SEVERITY MESSAGE'.
func parseRecord(line string) (log.Severity, string, error) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	sev, err := log.ParseSeverity(parts[0])
	if err != nil {
		return 0, "", err
	}
	var msg string
	if len(parts) == 2 {
		msg = strings.TrimSpace(parts[1])
	}
	return sev, msg, nil
}

func (le *LogEngine) options(c *cli.Context) error {
	m := structs.Map(le.opts)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(c.App.Writer, "%s: %v\n", k, m[k])
	}
	le.printGates(c.App.Writer)
	return nil
}

func (le *LogEngine) printGates(w io.Writer) {
	for _, sev := range log.Severities() {
		state := "open"
		if !le.logger.Enabled(sev) {
			state = "closed"
		}
		fmt.Fprintf(w, "gate %s: %s\n", sev, state)
	}
}
