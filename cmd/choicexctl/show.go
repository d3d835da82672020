package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucaskalb/choicex/db"
)

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Args:  cobra.ExactArgs(1),
	Short: "Print the raw choice sequence persisted under a key",
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("choicexctl: no entry stored under %q", key)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key:     %s\n", key)
	fmt.Fprintf(out, "choices: %v\n", attempt.Choices)
	fmt.Fprintf(out, "length:  %d\n", len(attempt.Choices))
	return nil
}
