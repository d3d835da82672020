package engine

import (
	"bytes"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// runningMoments accumulates an online mean and variance via Welford's
// method (spec.md §6.4), one instance per timed quantity (generation
// time, property runtime).
type runningMoments struct {
	count int64
	mean  float64
	m2    float64
}

func (r *runningMoments) add(x float64) {
	r.count++
	delta := x - r.mean
	r.mean += delta / float64(r.count)
	delta2 := x - r.mean
	r.m2 += delta * delta2
}

func (r *runningMoments) variance() float64 {
	if r.count < 2 {
		return 0
	}
	return r.m2 / float64(r.count-1)
}

// Stats is the per-run statistics surface spec.md §6.4 defines. It is
// safe to read once a run has finished; Snapshot returns a
// YAML-marshalable copy for -choicex.statsfile.
type Stats struct {
	Attempts     int64
	Acceptions   int64
	Rejections   int64
	Invocations  int64
	Overruns     int64
	Shrinks      int64
	Improvements int64
	WallTime     time.Duration

	genTime  runningMoments
	propTime runningMoments
}

func (s *Stats) recordGenTime(d time.Duration)  { s.genTime.add(float64(d)) }
func (s *Stats) recordPropTime(d time.Duration) { s.propTime.add(float64(d)) }

// Snapshot is the serializable view of Stats returned by Stats.Snapshot
// and marshaled to YAML by writeStatsFile (called from Run) for
// -choicex.statsfile.
type Snapshot struct {
	Attempts        int64         `yaml:"attempts"`
	Acceptions      int64         `yaml:"acceptions"`
	Rejections      int64         `yaml:"rejections"`
	Invocations     int64         `yaml:"invocations"`
	Overruns        int64         `yaml:"overruns"`
	Shrinks         int64         `yaml:"shrinks"`
	Improvements    int64         `yaml:"improvements"`
	WallTime        time.Duration `yaml:"wallTimeNanos"`
	GenTimeMean     float64       `yaml:"genTimeMeanNanos"`
	GenTimeVariance float64       `yaml:"genTimeVarianceNanos2"`
	PropTimeMean    float64       `yaml:"propTimeMeanNanos"`
	PropTimeVar     float64       `yaml:"propTimeVarianceNanos2"`
}

// Snapshot captures the current statistics as a value safe to marshal.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Attempts:        s.Attempts,
		Acceptions:      s.Acceptions,
		Rejections:      s.Rejections,
		Invocations:     s.Invocations,
		Overruns:        s.Overruns,
		Shrinks:         s.Shrinks,
		Improvements:    s.Improvements,
		WallTime:        s.WallTime,
		GenTimeMean:     s.genTime.mean,
		GenTimeVariance: s.genTime.variance(),
		PropTimeMean:    s.propTime.mean,
		PropTimeVar:     s.propTime.variance(),
	}
}

// writeStatsFile marshals snap to YAML and writes it atomically to
// path, for the -choicex.statsfile CI artifact.
func writeStatsFile(path string, snap Snapshot) error {
	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("stats: marshal: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("stats: write %s: %w", path, err)
	}
	return nil
}
