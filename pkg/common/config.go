// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package courtside

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/courtside/pkg/schedule"
	"laptudirm.com/x/courtside/pkg/timer"
)

//go:embed config.yaml
var BaseConfigFile []byte

// Config holds the default settings of courtside.
type Config struct {
	Format   schedule.Format `yaml:"format"`
	Leftover schedule.Policy `yaml:"leftover"`

	// Length of a round for the play timer.
	MatchMinutes int `yaml:"match-minutes"`

	// Session used when none is named explicitly.
	Session string `yaml:"session"`
}

// DefaultConfig returns the settings used when there is no config file.
func DefaultConfig() Config {
	return Config{
		Format:       schedule.Doubles,
		Leftover:     schedule.Rest,
		MatchMinutes: 15,
		Session:      "default",
	}
}

// LoadConfig reads the config file at the given path. Settings missing from
// the file keep their default values; a missing file gives the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	if _, err := timer.Minutes(config.MatchMinutes); err != nil {
		config.MatchMinutes = DefaultConfig().MatchMinutes
	}

	if config.Session == "" {
		config.Session = DefaultConfig().Session
	}

	return config, nil
}
