// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logengine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli"
	"github.com/wmbat/bazaar/log"
)

var errQuit = errors.New("logengine: quit requested")

var replWords = []string{
	"info", "warning", "critical", "error",
	"mute", "unmute", "gates", "quit",
}

// repl reads commands from an interactive prompt until quit, Ctrl+C or
// Ctrl+D.
func (le *LogEngine) repl(c *cli.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) (c []string) {
		for _, word := range replWords {
			if strings.HasPrefix(word, line) {
				c = append(c, word)
			}
		}
		return
	})

	prompt := le.logger.Name() + "> "
	for {
		ln, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return err
		}
		if strings.TrimSpace(ln) == "" {
			continue
		}
		line.AppendHistory(ln)
		if err := le.exec(ln, c.App.Writer); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintln(c.App.Writer, err)
		}
	}
}

// exec executes one interactive command. Status output goes to w, records
// go to the channel.
func (le *LogEngine) exec(ln string, w io.Writer) error {
	fields := strings.Fields(ln)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "quit", "exit":
		return errQuit
	case "gates":
		le.printGates(w)
		return nil
	case "mute", "unmute":
		if len(fields) != 2 {
			return fmt.Errorf("usage: %s SEVERITY", fields[0])
		}
		sev, err := log.ParseSeverity(fields[1])
		if err != nil {
			return err
		}
		le.logger.SetEnabled(sev, fields[0] == "unmute")
		return nil
	}
	sev, msg, err := parseRecord(ln)
	if err != nil {
		return err
	}
	le.logger.Log(sev, msg)
	return nil
}
