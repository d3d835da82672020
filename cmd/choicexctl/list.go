package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lucaskalb/choicex/db"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "List every key with a persisted counterexample",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	fdb, err := db.NewFileDB(dbDir)
	if err != nil {
		return fmt.Errorf("choicexctl: open %s: %w", dbDir, err)
	}
	keys, err := fdb.List()
	if err != nil {
		return fmt.Errorf("choicexctl: list %s: %w", dbDir, err)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}
