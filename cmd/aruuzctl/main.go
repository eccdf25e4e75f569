// Command aruuzctl is the CLI front end for the scansion engine
// (spec.md §6). It mirrors the engine's three input modes — exact,
// fuzzy, and free-verse scan — plus a standalone aligner and a local
// HTTP server, as subcommands of one cobra root.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	errorParam int
	jsonOutput bool
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aruuzctl",
	Short: "aruuzctl scans Urdu/Arabic poetic lines against the classical meter catalog",
	Long: `aruuzctl is a command-line front end for the aruuz-nigar scansion
engine. It accepts lines already written in the engine's code alphabet
(-, =, x) — word boundaries are whitespace — and reports which
classical meters the line conforms to, exactly or approximately.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&errorParam, "error-param", 6, "maximum Levenshtein distance accepted in fuzzy mode")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of colorized text")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newFuzzyCmd())
	rootCmd.AddCommand(newAlignCmd())
	rootCmd.AddCommand(newDominantCmd())
	rootCmd.AddCommand(newServeCmd())

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON writes v to stdout as indented JSON, for every subcommand's
// --json branch.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
