// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logengine

import (
	"bufio"
	"strings"

	"github.com/urfave/cli"
)

func (le *LogEngine) pipe(c *cli.Context) error {
	scanner := bufio.NewScanner(le.stdin)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		sev, msg, err := parseRecord(line)
		if err != nil {
			le.logger.Warningf("pipe: line %d: %s", n, err)
			continue
		}
		le.logger.Log(sev, msg)
	}
	if err := scanner.Err(); err != nil {
		return le.logger.Error(err)
	}
	return nil
}
