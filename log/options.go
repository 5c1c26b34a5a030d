// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Options defines the configuration of a channel.
type Options struct {
	// Name of the channel, unique within the process.
	Name string `yaml:"name" structs:"name" validate:"required"`
	// Pattern with spdlog flags, DefaultPattern if empty.
	Pattern string `yaml:"pattern" structs:"pattern"`
	// Color is one of ColorAuto (default), ColorAlways or ColorNever.
	Color string `yaml:"color" structs:"color" validate:"omitempty,oneof=auto always never"`
	// Colors overrides the color of severities with hex triplets.
	Colors map[string]string `yaml:"colors" structs:"colors" validate:"omitempty,dive,keys,oneof=info warning warn critical error,endkeys,hexcolor"`
	// Mute lists the severities whose gates start closed.
	Mute []string `yaml:"mute" structs:"mute" validate:"omitempty,dive,oneof=info warning warn critical error"`
	// Output receives the records, stdout if nil.
	Output io.Writer `yaml:"-" structs:"-" validate:"-"`
}

// Validate checks opts.
func (opts *Options) Validate() error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("log: invalid options: %w", err)
	}
	return nil
}

// LoadOptions reads channel options from the YAML file at path. A .env file
// in the working directory is loaded first; $VAR and ${VAR} references to
// environment variables in the file are expanded. Unset variables are left
// as they are.
func LoadOptions(path string) (*Options, error) {
	// missing .env files are fine
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := &Options{}
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), opts); err != nil {
		return nil, fmt.Errorf("log: cannot parse %s: %w", path, err)
	}
	if opts.Pattern == "" {
		opts.Pattern = DefaultPattern
	}
	if opts.Color == "" {
		opts.Color = ColorAuto
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

var envVarRE = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

func expandEnvVars(s string) string {
	return envVarRE.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(match, "$"), "{"), "}")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}
