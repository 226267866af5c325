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
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const FilePermissions = 0755

// HomeVariable is the environment variable which overrides the default
// location of the data directory.
const HomeVariable = "COURTSIDE_HOME"

var (
	// Directory is the data directory where courtside keeps the roster,
	// the configuration and the saved sessions.
	Directory = filepath.Join(xdg.Home, "courtside")

	// RosterFile is the path to the file storing the players and courts.
	RosterFile = filepath.Join(Directory, "roster.yaml")

	// ConfigFile is the path to the file storing the default settings.
	ConfigFile = filepath.Join(Directory, "config.yaml")

	// SessionDirectory is the path to the directory storing the sessions.
	SessionDirectory = filepath.Join(Directory, "sessions")
)

// Setup loads the environment from a .env file in the working directory,
// if there is one, then resolves and creates the data directories.
func Setup() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("Unable to load .env file")
	}

	if home := os.Getenv(HomeVariable); home != "" {
		SetDirectory(home)
	}

	TryMkdir(Directory)
	TryMkdir(SessionDirectory)
	TryCreate(ConfigFile, BaseConfigFile)

	logrus.WithField("directory", Directory).Debug("Using data directory")
}

// SetDirectory moves the data directory, and every path inside it, to the
// given directory.
func SetDirectory(dir string) {
	Directory = dir
	RosterFile = filepath.Join(Directory, "roster.yaml")
	ConfigFile = filepath.Join(Directory, "config.yaml")
	SessionDirectory = filepath.Join(Directory, "sessions")
}

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, FilePermissions)
	}
}

func TryCreate(file string, data []byte) {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		_ = os.WriteFile(file, data, FilePermissions)
	}
}
