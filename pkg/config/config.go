// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/machine"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ENV_VAR names the environment variable which, when set, locates the
// configuration file.
const ENV_VAR = "ARITHC_CONFIG"

// Config is the top-level configuration of the arithc tool.
type Config struct {
	Codegen CodegenConfig `toml:"codegen" yaml:"codegen"`
	Machine MachineConfig `toml:"machine" yaml:"machine"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// CodegenConfig determines the layout of generated assembly.
type CodegenConfig struct {
	Entry  string `toml:"entry" yaml:"entry"`
	Indent string `toml:"indent" yaml:"indent"`
}

// MachineConfig determines the resource limits of the stack machine.
type MachineConfig struct {
	MaxSteps   uint `toml:"max_steps" yaml:"max_steps"`
	StackLimit uint `toml:"stack_limit" yaml:"stack_limit"`
}

// LogConfig determines the logging verbosity.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	//
	cfg.applyDefaults()
	//
	return &cfg
}

// Load reads a configuration file, whose format (TOML or YAML) is determined
// by its extension.  Any settings missing from the file take their default
// values.
func Load(path string) (*Config, error) {
	var cfg Config
	//
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	//
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &cfg)
	case ".toml":
		err = toml.Unmarshal(bytes, &cfg)
	default:
		return nil, fmt.Errorf("unknown config file format: %s", ext)
	}
	//
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	//
	cfg.applyDefaults()
	//
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	//
	return &cfg, nil
}

// LoadOrDefault loads the configuration from the given path or, if that is
// empty, from the path in ARITHC_CONFIG.  If neither is set, the default
// configuration is returned.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ENV_VAR)
	}
	//
	if path == "" {
		return Default(), nil
	}
	//
	log.Debug(fmt.Sprintf("loading configuration from %s", path))
	//
	return Load(path)
}

// Validate checks the configuration is sensible.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	} else if strings.ContainsAny(c.Codegen.Entry, " \t\n:,") {
		return fmt.Errorf("invalid entry symbol \"%s\"", c.Codegen.Entry)
	}
	//
	return nil
}

// LogLevel returns the configured logging level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	//
	if err != nil {
		return log.InfoLevel
	}
	//
	return level
}

// CodegenConfig converts into the configuration used by the code generator.
func (c *Config) CodegenConfig() codegen.Config {
	return codegen.Config{Entry: c.Codegen.Entry, Indent: c.Codegen.Indent}
}

// MachineConfig converts into the configuration used by the stack machine.
func (c *Config) MachineConfig() machine.Config {
	return machine.Config{MaxSteps: c.Machine.MaxSteps, StackLimit: c.Machine.StackLimit}
}

func (c *Config) applyDefaults() {
	var (
		gen = codegen.DefaultConfig()
		vm  = machine.DefaultConfig()
	)
	//
	if c.Codegen.Entry == "" {
		c.Codegen.Entry = gen.Entry
	}
	//
	if c.Codegen.Indent == "" {
		c.Codegen.Indent = gen.Indent
	}
	//
	if c.Machine.MaxSteps == 0 {
		c.Machine.MaxSteps = vm.MaxSteps
	}
	//
	if c.Machine.StackLimit == 0 {
		c.Machine.StackLimit = vm.StackLimit
	}
	//
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
