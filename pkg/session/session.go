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

// Package session holds the state of a scheduling session: the rounds
// generated so far, the round being looked at, and the memory the allocator
// keeps between rounds.
package session

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/courtside/pkg/pairing"
	"laptudirm.com/x/courtside/pkg/schedule"
)

// New creates a new empty Session with the given name.
func New(name string) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Name:    name,
		History: pairing.NewHistory(),
		Recent:  schedule.NewRecentSet(),
	}
}

// Session is a single scheduling session. Sessions share no state, so
// every logical session must own its own instance.
type Session struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Rounds []schedule.Round `yaml:"rounds"`

	// Current is the 1-based number of the round being looked at, or 0
	// if there are no rounds.
	Current int `yaml:"current"`

	History *pairing.History    `yaml:"history"`
	Recent  *schedule.RecentSet `yaml:"recent-american-doubles"`

	// Random overrides the allocator's source of randomness.
	Random schedule.Random `yaml:"-"`
}

// Generate allocates a new round for the given players and courts, appends
// it to the session, and makes it the current round. It fails without
// changing the session if the inputs can't produce a round.
func (session *Session) Generate(players, courts []string, format schedule.Format, policy schedule.Policy) (schedule.Result, error) {
	if err := schedule.Validate(players, courts); err != nil {
		return schedule.Result{}, err
	}

	alloc := schedule.NewAllocator(session.History, session.Recent)
	if session.Random != nil {
		alloc.Random = session.Random
	}

	result := alloc.Allocate(players, courts, format, policy)

	session.Rounds = append(session.Rounds, result.Round)
	session.Current = len(session.Rounds)

	logrus.WithFields(logrus.Fields{
		"session": session.Name,
		"round":   session.Current,
	}).Debug("Generated round")

	return result, nil
}

// Round returns the current round.
func (session *Session) Round() (schedule.Round, bool) {
	if session.Current < 1 || session.Current > len(session.Rounds) {
		return nil, false
	}

	return session.Rounds[session.Current-1], true
}

// Number returns the number of the current round.
func (session *Session) Number() int {
	return session.Current
}

// Next moves to the next round. It reports false, without moving, if the
// current round is the last one.
func (session *Session) Next() bool {
	if session.Current >= len(session.Rounds) {
		return false
	}

	session.Current++
	return true
}

// Previous moves to the previous round. It reports false, without moving,
// if the current round is the first one.
func (session *Session) Previous() bool {
	if session.Current <= 1 {
		return false
	}

	session.Current--
	return true
}

// Reset clears the rounds, the pairing history and the rotation memory.
func (session *Session) Reset() {
	session.Rounds = nil
	session.Current = 0
	session.History.Reset()
	session.Recent.Clear()
}
