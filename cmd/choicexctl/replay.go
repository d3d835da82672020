package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucaskalb/choicex/db"
)

var replayCmd = &cobra.Command{
	Use:   "replay <key>",
	Args:  cobra.ExactArgs(1),
	Short: "Confirm a counterexample is persisted and ready to replay",
	Long: `Generate's replay-first step (spec.md §4.4) already re-plays any
Attempt persisted under a property's key the next time that property
runs against the same DB directory. replay does not re-execute the
property itself — cmd/choicexctl has no way to load an arbitrary Go
test binary — it only confirms the entry exists and reports the
go test invocation that will replay it.`,
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	key := args[0]
	fdb, err := db.NewFileDB(dbDir)
	if err != nil {
		return fmt.Errorf("choicexctl: open %s: %w", dbDir, err)
	}
	attempt, ok, err := fdb.Get(key)
	if err != nil {
		return fmt.Errorf("choicexctl: get %q: %w", key, err)
	}
	if !ok {
		return fmt.Errorf("choicexctl: no entry stored under %q; nothing to replay", key)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "entry %q is persisted (%d choices) and will replay automatically\n", key, len(attempt.Choices))
	fmt.Fprintf(out, "on the next run against this DB directory (%s): go test -run '%s'\n", dbDir, testNameOf(key))
	return nil
}

// testNameOf recovers the leading *testing.T-derived test name from a
// stableKey of the form "TestName/propertyName" (engine.stableKey),
// falling back to the key itself when it carries no "/".
func testNameOf(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			return key[:i]
		}
	}
	return key
}
