package schedule

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/courtside/pkg/pairing"
)

// identity is a Random which leaves every slice in its original order.
type identity struct{}

func (identity) Shuffle(int, func(i, j int)) {}

func players(n int) []string {
	list := make([]string, n)
	for i := range list {
		list[i] = fmt.Sprintf("P%d", i+1)
	}

	return list
}

func newTestAllocator() *Allocator {
	alloc := NewAllocator(pairing.NewHistory(), NewRecentSet())
	alloc.Random = identity{}
	return alloc
}

func TestAllocate_SingleDoublesMatch(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(4), []string{"1"}, Doubles, Rest)

	require.Len(t, result.Round, 1)
	assert.Equal(t, Match{Court: "1", Kind: KindDoubles, Players: []string{"P1", "P2", "P3", "P4"}}, result.Round[0])
	assert.Empty(t, result.Leftovers)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, 6, alloc.History.Len())
	assert.Equal(t, 1, alloc.History.TimesPlayed("P4", "P1"))
}

func TestAllocate_DoublesThreeLeftoversOverflow(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(3), []string{"1"}, Doubles, Rest)

	require.Len(t, result.Round, 1)
	assert.Equal(t, KindOverflow, result.Round[0].Kind)
	assert.Equal(t, "", result.Round[0].Court)
	assert.ElementsMatch(t, []string{"P1", "P2", "P3"}, result.Round[0].Players)
	assert.Equal(t, 0, alloc.History.Len())
}

func TestAllocate_DoublesTwoLeftoversOverflow(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(6), []string{"1"}, Doubles, AmericanDoubles)

	require.Len(t, result.Round, 2)
	assert.Equal(t, KindDoubles, result.Round[0].Kind)
	assert.Equal(t, Match{Kind: KindOverflow, Players: []string{"P5", "P6"}}, result.Round[1])
	assert.Equal(t, 0, alloc.History.TimesPlayed("P5", "P6"))
	assert.Equal(t, 0, alloc.Recent.Len())
}

func TestAllocate_SinglesAmericanDoubles(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(5), []string{"1", "2"}, Singles, AmericanDoubles)

	require.Len(t, result.Round, 3)
	assert.Equal(t, Match{Court: "1", Kind: KindSingles, Players: []string{"P1", "P2"}}, result.Round[0])
	assert.Equal(t, Match{Court: "2", Kind: KindSingles, Players: []string{"P3", "P4"}}, result.Round[1])

	rotation := result.Round[2]
	assert.Equal(t, KindAmericanDoubles, rotation.Kind)
	assert.Equal(t, []string{"P5", "P1", "P2"}, rotation.Players)
	assert.Equal(t, "Rotate", rotation.Slot())
	assert.Equal(t, []string{"P5"}, result.Leftovers)

	assert.Equal(t, []string{"P1", "P2", "P5"}, alloc.Recent.Players())
	assert.Equal(t, 2, alloc.History.TimesPlayed("P1", "P2"))
	assert.Equal(t, 1, alloc.History.TimesPlayed("P5", "P1"))
	assert.Equal(t, 0, alloc.History.TimesPlayed("P5", "P3"))
}

func TestAllocate_AmericanDoublesAvoidsRecent(t *testing.T) {
	alloc := newTestAllocator()
	alloc.Allocate(players(5), []string{"1", "2"}, Singles, AmericanDoubles)
	result := alloc.Allocate(players(5), []string{"1", "2"}, Singles, AmericanDoubles)

	rotation := result.Round[len(result.Round)-1]
	assert.Equal(t, []string{"P5", "P3", "P4"}, rotation.Players)
	assert.Equal(t, []string{"P3", "P4", "P5"}, alloc.Recent.Players())
}

func TestAllocate_AmericanDoublesFallsBackToRepeats(t *testing.T) {
	alloc := newTestAllocator()
	alloc.Recent.Replace("P1", "P2", "P3")

	result := alloc.Allocate(players(5), []string{"1"}, Doubles, AmericanDoubles)

	require.Len(t, result.Round, 2)
	rotation := result.Round[1]
	assert.Equal(t, KindAmericanDoubles, rotation.Kind)
	assert.Equal(t, []string{"P5", "P1", "P2", "P3"}, rotation.Players)
	assert.NoError(t, rotation.Validate())
	assert.Equal(t, []string{"P1", "P2", "P3", "P5"}, alloc.Recent.Players())
}

func TestAllocate_DoublesAmericanDoublesNeedsThreePlaced(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(1), []string{"1"}, Doubles, AmericanDoubles)

	assert.Empty(t, result.Round)
	assert.Equal(t, []string{"P1"}, result.Leftovers)
	assert.Equal(t, 0, alloc.Recent.Len())
}

func TestAllocate_SinglesAmericanDoublesNeedsTwoPlaced(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(1), []string{"1"}, Singles, AmericanDoubles)

	assert.Empty(t, result.Round)
	assert.Equal(t, []string{"P1"}, result.Leftovers)
}

func TestAllocate_LeftoverRests(t *testing.T) {
	tests := []struct {
		name    string
		players int
		format  Format
	}{
		{"singles", 3, Singles},
		{"doubles", 5, Doubles},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			alloc := newTestAllocator()
			result := alloc.Allocate(players(test.players), []string{"1"}, test.format, Rest)

			require.Len(t, result.Round, 2)
			rest := result.Round[1]
			assert.Equal(t, KindRest, rest.Kind)
			assert.Equal(t, []string{fmt.Sprintf("P%d", test.players)}, rest.Players)
			assert.Equal(t, "Rest", rest.Slot())
			assert.Equal(t, 0, alloc.History.TimesPlayed(rest.Players[0], "P1"))
		})
	}
}

func TestAllocate_InsufficientCourts(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(8), []string{"1"}, Doubles, AmericanDoubles)

	require.Len(t, result.Warnings, 1)
	assert.True(t, errors.Is(result.Warnings[0], ErrInsufficientCourts))

	// four stranded players have no leftover resolution of their own
	require.Len(t, result.Round, 1)
	assert.Equal(t, []string{"P5", "P6", "P7", "P8"}, result.Leftovers)
	assert.Equal(t, 0, alloc.Recent.Len())
}

func TestAllocate_NoCourts(t *testing.T) {
	alloc := newTestAllocator()
	result := alloc.Allocate(players(3), nil, Doubles, Rest)

	require.Len(t, result.Round, 1)
	assert.Equal(t, KindOverflow, result.Round[0].Kind)
	assert.Empty(t, result.Warnings)
}

func TestAllocate_HistoryUnaware(t *testing.T) {
	alloc := &Allocator{Random: identity{}}
	result := alloc.Allocate(players(5), []string{"1"}, Doubles, AmericanDoubles)

	require.Len(t, result.Round, 2)
	assert.Equal(t, KindAmericanDoubles, result.Round[1].Kind)
	assert.Equal(t, []string{"P5", "P1", "P2", "P3"}, result.Round[1].Players)
}

func TestAllocate_DoesNotModifyInput(t *testing.T) {
	alloc := NewAllocator(pairing.NewHistory(), NewRecentSet())
	alloc.Random = rand.New(rand.NewSource(7))

	input := players(9)
	alloc.Allocate(input, []string{"1", "2"}, Doubles, AmericanDoubles)

	assert.Equal(t, players(9), input)
}

func TestAllocate_NoDoubleBooking(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		alloc := NewAllocator(pairing.NewHistory(), NewRecentSet())
		alloc.Random = random

		format := Format(random.Intn(2))
		policy := Policy(random.Intn(2))
		courts := make([]string, random.Intn(5))
		for c := range courts {
			courts[c] = fmt.Sprint(c + 1)
		}

		result := alloc.Allocate(players(random.Intn(14)), courts, format, policy)

		seenPlayers := map[string]bool{}
		seenCourts := map[string]bool{}
		for _, match := range result.Round {
			require.NoError(t, match.Validate())

			if match.Court != "" {
				assert.False(t, seenCourts[match.Court], "court %s booked twice", match.Court)
				seenCourts[match.Court] = true
			}

			// rotating partners are drawn from the players already placed
			placed := match.Players
			if match.Kind == KindAmericanDoubles {
				placed = placed[:1]
			}

			for _, player := range placed {
				assert.False(t, seenPlayers[player], "player %s booked twice", player)
				seenPlayers[player] = true
			}
		}

		switch format {
		case Singles:
			for _, match := range result.Round {
				if match.Kind == KindAmericanDoubles {
					assert.Len(t, match.Players, 3)
				}
			}
		case Doubles:
			for _, match := range result.Round {
				if match.Kind == KindAmericanDoubles {
					assert.Len(t, match.Players, 4)
				}
			}
		}
	}
}

func TestValidate(t *testing.T) {
	assert.True(t, errors.Is(Validate(players(1), []string{"1"}), ErrInsufficientPlayers))
	assert.True(t, errors.Is(Validate(players(4), nil), ErrNoCourts))
	assert.NoError(t, Validate(players(2), []string{"1"}))
	assert.NoError(t, Validate(players(3), []string{"1"}))
}
