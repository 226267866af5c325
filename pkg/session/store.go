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

package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	courtside "laptudirm.com/x/courtside/pkg/common"
	"laptudirm.com/x/courtside/pkg/pairing"
	"laptudirm.com/x/courtside/pkg/schedule"
)

const extension = ".yaml"

var ErrInvalidName = errors.New("session: invalid session name")

// Store keeps sessions as YAML files inside a directory, one file per
// session name.
type Store struct {
	Directory string
}

// NewStore creates a Store in the given directory, creating the directory
// if it doesn't exist.
func NewStore(directory string) *Store {
	courtside.TryMkdir(directory)
	return &Store{Directory: directory}
}

func (store *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(store.Directory, name+extension), nil
}

// Load reads the session with the given name from the Store.
func (store *Store) Load(name string) (*Session, error) {
	path, err := store.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	session := New(name)
	if err := yaml.Unmarshal(file, session); err != nil {
		return nil, fmt.Errorf("load session %s: %w", name, err)
	}

	// The file name decides where the session is saved.
	session.Name = name

	if session.History == nil {
		session.History = pairing.NewHistory()
	}

	if session.Recent == nil {
		session.Recent = schedule.NewRecentSet()
	}

	if session.Current > len(session.Rounds) {
		session.Current = len(session.Rounds)
	}

	return session, nil
}

// Open loads the session with the given name, or creates a new one if the
// Store doesn't have it.
func (store *Store) Open(name string) (*Session, error) {
	session, err := store.Load(name)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("session", name).Debug("Starting new session")
		return New(name), nil
	}

	return session, err
}

// Save writes the session to the Store, replacing any previous version.
func (store *Store) Save(session *Session) error {
	path, err := store.path(session.Name)
	if err != nil {
		return err
	}

	file, err := yaml.Marshal(session)
	if err != nil {
		return err
	}

	return os.WriteFile(path, file, courtside.FilePermissions)
}

// Delete removes the session with the given name from the Store.
func (store *Store) Delete(name string) error {
	path, err := store.path(name)
	if err != nil {
		return err
	}

	return os.Remove(path)
}

// List returns the names of the sessions in the Store.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.Directory)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != extension {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), extension))
	}

	sort.Strings(names)
	return names, nil
}
