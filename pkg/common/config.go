/**
 * Copyright 2021 The Arith Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"fmt"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	// ParseModeStrict rejects malformed expressions.
	ParseModeStrict = "strict"

	// ParseModePermissive keeps the historical best-effort behavior.
	ParseModePermissive = "permissive"

	// DefaultConfigFilePath is used unless overridden via the CLI.
	DefaultConfigFilePath = "/etc/arith.yaml"
)

// Config defines the configuration settings for the expression client
type Config struct {
	ParseMode string `yaml:"parseMode"`
	LogLevel  string `yaml:"logLevel"`

	// HideTokens suppresses the token list line in the REPL output.
	HideTokens bool `yaml:"hideTokens"`
}

// NewDefaultConfig returns a new default client configuration.
func NewDefaultConfig() *Config {
	return &Config{
		ParseMode: ParseModeStrict,
		LogLevel:  "info",
	}
}

// Validate validates a Config and returns an error if it's invalid.
func (conf *Config) Validate() error {
	if conf.ParseMode != ParseModeStrict && conf.ParseMode != ParseModePermissive {
		return fmt.Errorf("invalid parse mode %q provided in config", conf.ParseMode)
	}
	if _, err := log.ParseLevel(conf.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q provided in config", conf.LogLevel)
	}
	return nil
}

// LoadFromFile loads the config from the file. It assumes that config already has the defaults.
// In the case of an error, it leaves the config untouched.
func (conf *Config) LoadFromFile(path string) {
	log.Info(fmt.Sprintf("arith::config::LoadFromFile; loading config from file %s", path))
	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error(fmt.Sprintf("arith::config::LoadFromFile; error reading config from file %s, error %s", path, err))
		return
	}
	fconf := Config{}
	err = yaml.Unmarshal(data, &fconf)
	if err != nil {
		log.Error(fmt.Sprintf("arith::config::LoadFromFile; error unmarshalling config from file %s, error %s", path, err))
		return
	}

	log.WithFields(log.Fields{"config": fconf}).Debug("arith::config::LoadFromFile; read contents from the file")

	// populate fields
	if fconf.ParseMode != "" {
		conf.ParseMode = fconf.ParseMode
	}
	if fconf.LogLevel != "" {
		conf.LogLevel = fconf.LogLevel
	}
	conf.HideTokens = fconf.HideTokens
}
