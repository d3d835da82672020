package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopDefault_RestoresPriorConfig(t *testing.T) {
	base := CurrentDefault()
	pushed := base
	pushed.MaxExamples = 12345
	PushDefault(pushed)
	assert.Equal(t, 12345, CurrentDefault().MaxExamples)
	PopDefault()
	assert.Equal(t, base.MaxExamples, CurrentDefault().MaxExamples)
}

func TestPopDefault_PanicsWithoutMatchingPush(t *testing.T) {
	for len(defaultStack) > 0 {
		PopDefault()
	}
	assert.Panics(t, func() { PopDefault() })
}

func TestLoadConfigFile_OverlaysFieldsOntoBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".choicexrc")
	contents := `{
		// example budget pinned for CI
		"examples": 250,
		"verbose": true,
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	base := Config{MaxExamples: 100, BufferSize: 64}
	cfg, err := LoadConfigFile(path, base)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.MaxExamples)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 64, cfg.BufferSize)
}
