package engine

import (
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// Logger is the package-level structured logger, writing to stderr at
// warn level. Run does not use it: each Run builds its own logger with
// loggerFor (debug level when Config.Verbose is set, routed to t.Log
// for a *testing.T-scoped run), mirroring the teacher's
// t.Logf("[rapidx] ...") line but structured through zerolog the way
// jhkimqd-chaos-utils logs.
var Logger = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()

// testLogWriter adapts a *testing.T into an io.Writer so zerolog can
// write through it; used only for the lifetime of one Run call.
type testLogWriter struct {
	t  *testing.T
	mu sync.Mutex
}

func (w *testLogWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// loggerFor returns a logger scoped to one Run call: writing to t.Log
// when t is non-nil, to stderr otherwise, at debug level when verbose.
func loggerFor(t *testing.T, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if t == nil {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(&testLogWriter{t: t}).Level(level).With().Timestamp().Logger()
}

// warnOnce guards warnings that must be emitted at most once per run,
// keyed by name. The Evaluator uses it for the targeting double-write
// warning; duplicate errors are tracked in TestState.ErrorCache instead.
type warnOnce struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newWarnOnce() *warnOnce {
	return &warnOnce{seen: make(map[string]bool)}
}

func (w *warnOnce) do(key string, fn func()) {
	w.mu.Lock()
	already := w.seen[key]
	w.seen[key] = true
	w.mu.Unlock()
	if !already {
		fn()
	}
}
