// Command choicexctl inspects and manages the Example DB (spec.md
// §4.9, §6.5) that engine.Run persists counterexamples to.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dbDir   string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "choicexctl",
	Short:   "Inspect and manage the choicex Example DB",
	Long:    `choicexctl lists, shows, and clears persisted property counterexamples stored by the choicex engine's Example DB.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDir, "dir", ".choicex/default", "Example DB directory to operate on")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(clearCmd)
}

// Commands are defined in separate files:
// - listCmd in list.go
// - showCmd in show.go
// - replayCmd in replay.go
// - clearCmd in clear.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
