package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecord_CountsEveryPair(t *testing.T) {
	history := NewHistory()
	history.Record("Alice", "Bob", "Carol", "Dave")

	assert.Equal(t, 6, history.Len())
	assert.Equal(t, 1, history.TimesPlayed("Alice", "Dave"))
	assert.Equal(t, 1, history.TimesPlayed("Carol", "Bob"))
	assert.Equal(t, 0, history.TimesPlayed("Alice", "Erin"))
}

func TestRecord_Symmetric(t *testing.T) {
	history := NewHistory()
	history.Record("Bob", "Alice")
	history.Record("Alice", "Bob", "Carol")

	assert.Equal(t, 2, history.TimesPlayed("Alice", "Bob"))
	assert.Equal(t, history.TimesPlayed("Alice", "Bob"), history.TimesPlayed("Bob", "Alice"))
	assert.Equal(t, history.TimesPlayed("Carol", "Alice"), history.TimesPlayed("Alice", "Carol"))
}

func TestRecord_Monotonic(t *testing.T) {
	history := NewHistory()
	last := 0
	for i := 0; i < 5; i++ {
		history.Record("Alice", "Bob")
		history.Record("Carol", "Dave")

		now := history.TimesPlayed("Alice", "Bob")
		assert.GreaterOrEqual(t, now, last)
		last = now
	}

	assert.Equal(t, 5, last)
}

func TestRecord_SkipsSelfPairs(t *testing.T) {
	history := NewHistory()
	history.Record("Alice", "Alice", "Bob")

	assert.Equal(t, 0, history.TimesPlayed("Alice", "Alice"))
	assert.Equal(t, 2, history.TimesPlayed("Alice", "Bob"))
}

func TestReset(t *testing.T) {
	history := NewHistory()
	history.Record("Alice", "Bob", "Carol")
	history.Reset()

	assert.Equal(t, 0, history.Len())
	assert.Equal(t, 0, history.TimesPlayed("Alice", "Bob"))
	assert.Empty(t, history.Counts())
}

func TestCounts_Sorted(t *testing.T) {
	history := NewHistory()
	history.Record("Dave", "Carol")
	history.Record("Bob", "Alice")
	history.Record("Bob", "Alice")

	assert.Equal(t, []PairCount{
		{A: "Alice", B: "Bob", Count: 2},
		{A: "Carol", B: "Dave", Count: 1},
	}, history.Counts())
}

func TestYAML_RoundTrip(t *testing.T) {
	history := NewHistory()
	history.Record("Alice", "Bob", "Carol")
	history.Record("Alice", "Bob")

	data, err := yaml.Marshal(history)
	require.NoError(t, err)

	decoded := NewHistory()
	require.NoError(t, yaml.Unmarshal(data, decoded))

	assert.Equal(t, history.Counts(), decoded.Counts())
	assert.Equal(t, 2, decoded.TimesPlayed("Bob", "Alice"))
}

func TestYAML_NormalizesEntries(t *testing.T) {
	data := []byte(`
- {a: Bob, b: Alice, count: 2}
- {a: Alice, b: Bob, count: 1}
- {a: Carol, b: Carol, count: 4}
- {a: Dave, b: Erin, count: 0}
`)

	history := NewHistory()
	require.NoError(t, yaml.Unmarshal(data, history))

	assert.Equal(t, 3, history.TimesPlayed("Alice", "Bob"))
	assert.Equal(t, 1, history.Len())
}
