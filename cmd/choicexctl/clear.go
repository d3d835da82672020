package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucaskalb/choicex/db"
)

var allKeys bool

var clearCmd = &cobra.Command{
	Use:   "clear [key]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Remove a persisted counterexample, or every one with --all",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&allKeys, "all", false, "clear every key in the DB directory")
}

func runClear(cmd *cobra.Command, args []string) error {
	fdb, err := db.NewFileDB(dbDir)
	if err != nil {
		return fmt.Errorf("choicexctl: open %s: %w", dbDir, err)
	}

	if allKeys {
		keys, err := fdb.List()
		if err != nil {
			return fmt.Errorf("choicexctl: list %s: %w", dbDir, err)
		}
		for _, k := range keys {
			if err := fdb.Delete(k); err != nil {
				return fmt.Errorf("choicexctl: delete %q: %w", k, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %d entries\n", len(keys))
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("choicexctl: clear requires a key argument, or --all")
	}
	if err := fdb.Delete(args[0]); err != nil {
		return fmt.Errorf("choicexctl: delete %q: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", args[0])
	return nil
}
