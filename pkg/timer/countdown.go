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

// Package timer counts down the length of a round on the terminal.
package timer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const SPIN = 14

// Bounds of the match time of a round, in minutes.
const (
	MinMinutes = 5
	MaxMinutes = 60
)

var ErrMatchTime = errors.New("match time out of range")

// Minutes converts a match time in minutes to a duration, rejecting lengths
// outside [MinMinutes, MaxMinutes].
func Minutes(minutes int) (time.Duration, error) {
	if minutes < MinMinutes || minutes > MaxMinutes {
		return 0, fmt.Errorf("%w: %d minutes, want %d to %d", ErrMatchTime, minutes, MinMinutes, MaxMinutes)
	}

	return time.Duration(minutes) * time.Minute, nil
}

// Clock formats the remaining duration as MM:SS, rounding up to the next
// whole second.
func Clock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}

	secs := int((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Countdown shows a spinner with the remaining time on out until the given
// duration has passed or the context is cancelled.
func Countdown(ctx context.Context, length time.Duration, out io.Writer) error {
	return countdown(ctx, length, out, time.Second)
}

func countdown(ctx context.Context, length time.Duration, out io.Writer, tick time.Duration) error {
	spin := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(out))
	spin.Suffix = " " + Clock(length)
	spin.Start()
	defer spin.Stop()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	deadline := time.Now().Add(length)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			remaining := time.Until(deadline)

			spin.Lock()
			spin.Suffix = " " + Clock(remaining)
			spin.Unlock()

			if remaining <= 0 {
				spin.FinalMSG = "\x1b[32mTime's up! Round is over.\x1b[0m\a\n"
				return nil
			}
		}
	}
}
