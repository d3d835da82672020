// Package engine drives the search: it owns TestState, the Evaluator,
// the generation loop, targeting and the shrinker (spec.md §4.3-§4.6).
// Everything in this package operates on Attempts and TestCases from
// package choice and Possibilities from package gen; it never touches
// randomness directly.
package engine

import (
	"sync"
	"time"

	"github.com/spf13/pflag"

	"github.com/lucaskalb/choicex/choice"
	"github.com/lucaskalb/choicex/db"
)

// Config holds the knobs spec.md §6.3 recognizes. The zero Config is not
// directly usable; build one with Default() or CurrentDefault().
type Config struct {
	// MaxExamples is the upper bound on accepted draws. -1 means
	// unbounded (bounded only by Deadline, if any).
	MaxExamples int

	// BufferSize is the nominal per-draw choice budget; the effective
	// cap handed to each TestCase is BufferSize*8, matching spec.md
	// §4.4 step 2.
	BufferSize int

	// RNG is the copyable PRNG seed draws are reseeded from. The zero
	// value is the fixed seed 0; Default populates it with
	// choice.FreshRNGState() unless -choicex.seed is set.
	RNG choice.RNGState

	// Record reports into a parent test-set when true (spec.md §6.3);
	// this engine has no test-set integration of its own, so Record
	// only gates whether Run logs a per-property summary line.
	Record bool

	// Verbose raises the log level from warn to debug, surfacing
	// shrink-pass and generation-loop progress.
	Verbose bool

	// Broken marks a property expected to currently fail. A Pass under
	// Broken becomes an Error result ("fix or un-mark broken").
	Broken bool

	// DB is the Example DB handle, or one of db.Unset / db.NoRecord.
	DB db.DB

	// Timeout bounds the whole run; zero means no deadline.
	Timeout time.Duration

	// MaxShrinks safety-bounds the shrinker's fixed-point loop so a
	// pathological property (one whose "interesting" predicate itself
	// flaps between runs) cannot shrink forever.
	MaxShrinks int

	// StatsFile, when non-empty, is a path Run writes the finished
	// run's Stats.Snapshot to as YAML, giving CI a machine-readable
	// artifact without a full statistics-presentation layer.
	StatsFile string
}

var (
	flagSeed       = pflag.Int64("choicex.seed", 0, "RNG seed; 0 draws a fresh seed from hardware entropy")
	flagExamples   = pflag.Int("choicex.examples", 100, "max_examples: upper bound on accepted draws, -1 for unbounded")
	flagBufferSize = pflag.Int("choicex.buffersize", 8192, "nominal per-draw choice budget (effective cap is 8x this)")
	flagMaxShrinks = pflag.Int("choicex.maxshrinks", 10_000, "safety bound on total shrink-pass iterations")
	flagVerbose    = pflag.Bool("choicex.verbose", false, "include shrink-pass and generation-loop progress in logs")
	flagRecord     = pflag.Bool("choicex.record", true, "log a per-property summary line when a run completes")
	flagTimeout    = pflag.Duration("choicex.timeout", 0, "deadline for the whole run; 0 means no deadline")
	flagStatsFile  = pflag.String("choicex.statsfile", "", "path to write the finished run's statistics snapshot as YAML; empty disables it")
)

// Default returns a Config built from command-line flags, the same way
// the teacher's prop.Default() reads its flag.* globals — upgraded to
// pflag so the same flag set composes into a cobra command tree (see
// cmd/choicexctl). DB defaults to db.Unset: Run substitutes a
// directory-backed DB the first time one is actually needed.
func Default() Config {
	seed := *flagSeed
	rng := choice.FreshRNGState()
	if seed != 0 {
		rng = choice.NewRNGState(seed)
	}
	return Config{
		MaxExamples: *flagExamples,
		BufferSize:  *flagBufferSize,
		RNG:         rng,
		Record:      *flagRecord,
		Verbose:     *flagVerbose,
		Broken:      false,
		DB:          db.Unset,
		Timeout:     *flagTimeout,
		MaxShrinks:  *flagMaxShrinks,
		StatsFile:   *flagStatsFile,
	}
}

// defaultStack is the process-wide "default configuration" cell spec.md
// §9 calls for, kept stackable rather than a package singleton so
// nested test scopes can override it without leaking into sibling
// scopes.
var (
	defaultStackMu sync.Mutex
	defaultStack   []Config
)

// PushDefault pushes cfg as the new process-wide default configuration.
// Every PushDefault must be matched by a PopDefault, typically via
// defer immediately after the call.
func PushDefault(cfg Config) {
	defaultStackMu.Lock()
	defer defaultStackMu.Unlock()
	defaultStack = append(defaultStack, cfg)
}

// PopDefault removes the most recently pushed default configuration.
// It panics if the stack is empty, since that indicates a missing
// PushDefault paired with this call.
func PopDefault() {
	defaultStackMu.Lock()
	defer defaultStackMu.Unlock()
	if len(defaultStack) == 0 {
		panic("engine: PopDefault called without a matching PushDefault")
	}
	defaultStack = defaultStack[:len(defaultStack)-1]
}

// CurrentDefault returns the top of the default-configuration stack, or
// Default() if nothing has been pushed.
func CurrentDefault() Config {
	defaultStackMu.Lock()
	defer defaultStackMu.Unlock()
	if len(defaultStack) == 0 {
		return Default()
	}
	return defaultStack[len(defaultStack)-1]
}

func rngFromSeed(seed int64) choice.RNGState {
	return choice.NewRNGState(seed)
}
