package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/choicex/choice"
	"github.com/lucaskalb/choicex/db"
	"github.com/lucaskalb/choicex/gen"
)

func TestGenerate_FindsCounterexampleForAlwaysFalse(t *testing.T) {
	prop := &Property{
		Name: "always false",
		Args: []NamedArg{Named("n", gen.Integers(0, 10))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			return false
		},
	}
	cfg := Config{MaxExamples: 50, BufferSize: 64, RNG: choice.NewRNGState(7), DB: db.NoRecord, MaxShrinks: 100}
	ts := NewTestState(prop, "k", cfg, zerolog.Nop())
	Generate(ts)
	require.NotNil(t, ts.Result)
}

func TestGenerate_PassingPropertyExhaustsExampleBudget(t *testing.T) {
	prop := &Property{
		Name: "always true",
		Args: []NamedArg{Named("n", gen.Integers(0, 10))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			return true
		},
	}
	cfg := Config{MaxExamples: 25, BufferSize: 64, RNG: choice.NewRNGState(7), DB: db.NoRecord, MaxShrinks: 100}
	ts := NewTestState(prop, "k", cfg, zerolog.Nop())
	Generate(ts)
	assert.Nil(t, ts.Result)
	assert.Equal(t, int64(25), ts.Stats.Acceptions)
}

func TestGenerate_ReplaysPersistedAttemptFirst(t *testing.T) {
	prop := &Property{
		Name: "replay",
		Args: []NamedArg{Named("n", gen.Integers(0, 10))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			return v["n"].(int64) != 7
		},
	}
	memDB := newMemDB()
	require.NoError(t, memDB.Put("k", choice.Attempt{Choices: []uint64{7}}))

	cfg := Config{MaxExamples: 5, BufferSize: 64, RNG: choice.NewRNGState(1), DB: memDB, MaxShrinks: 100}
	ts := NewTestState(prop, "k", cfg, zerolog.Nop())
	Generate(ts)
	require.NotNil(t, ts.Result)
	assert.Equal(t, []uint64{7}, ts.Result.Choices)
}

// memDB is a minimal in-memory db.DB for tests that need Put/Get
// behavior without touching the filesystem.
type memDB struct {
	entries map[string]choice.Attempt
}

func newMemDB() *memDB { return &memDB{entries: map[string]choice.Attempt{}} }

func (m *memDB) List() ([]string, error) {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *memDB) Put(key string, a choice.Attempt) error {
	m.entries[key] = a.Clone()
	return nil
}

func (m *memDB) Get(key string) (choice.Attempt, bool, error) {
	a, ok := m.entries[key]
	return a, ok, nil
}

func (m *memDB) Delete(key string) error {
	delete(m.entries, key)
	return nil
}
