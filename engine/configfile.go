package engine

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tailscale/hujson"
)

// fileConfig is the on-disk shape of a .choicexrc: JSON-with-comments
// (parsed via hujson) so a repository can pin a seed/examples/deadline
// without touching code, the way calvinalkan-agent-task pins its task
// manifests.
type fileConfig struct {
	Seed        *int64 `json:"seed,omitempty"`
	Examples    *int   `json:"examples,omitempty"`
	BufferSize  *int   `json:"bufferSize,omitempty"`
	MaxShrinks  *int   `json:"maxShrinks,omitempty"`
	Verbose     *bool  `json:"verbose,omitempty"`
	Record      *bool  `json:"record,omitempty"`
	TimeoutMS   *int64 `json:"timeoutMs,omitempty"`
}

// LoadConfigFile reads a .choicexrc-style file at path and overlays its
// fields onto base, returning the merged Config. Fields absent from the
// file leave base's value untouched.
func LoadConfigFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	standard, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, err
	}
	var fc fileConfig
	if err := json.Unmarshal(standard, &fc); err != nil {
		return Config{}, err
	}

	cfg := base
	if fc.Seed != nil {
		cfg.RNG = rngFromSeed(*fc.Seed)
	}
	if fc.Examples != nil {
		cfg.MaxExamples = *fc.Examples
	}
	if fc.BufferSize != nil {
		cfg.BufferSize = *fc.BufferSize
	}
	if fc.MaxShrinks != nil {
		cfg.MaxShrinks = *fc.MaxShrinks
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Record != nil {
		cfg.Record = *fc.Record
	}
	if fc.TimeoutMS != nil {
		cfg.Timeout = time.Duration(*fc.TimeoutMS) * time.Millisecond
	}
	return cfg, nil
}
