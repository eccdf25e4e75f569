package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
	"github.com/tariquesani/aruuz-nigar/internal/scansion"
)

var dominantResults []string

func newDominantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dominant",
		Short: "resolve the dominant meter across several already-scanned lines",
		Long: `dominant takes one or more --result "meter name|feet" pairs — the
meter_name and feet_flat fields of prior scan results for a couplet or
stanza — and reports which meter the group as a whole conforms to
(spec.md §4.7).`,
		RunE: runDominant,
	}
	cmd.Flags().StringArrayVar(&dominantResults, "result", nil, `one line's "meter name|feet", repeatable`)
	return cmd
}

func runDominant(cmd *cobra.Command, args []string) error {
	if len(dominantResults) == 0 {
		return fmt.Errorf("at least one --result is required")
	}
	cat := catalog.BuildCatalog()

	var results []scansion.LineScansionResult
	for _, raw := range dominantResults {
		parts := strings.SplitN(raw, "|", 2)
		if len(parts) != 2 {
			return fmt.Errorf("--result %q must be \"meter name|feet\"", raw)
		}
		name := strings.TrimSpace(parts[0])
		feetStr := strings.TrimSpace(parts[1])
		var feet []catalog.Foot
		for _, n := range strings.Fields(feetStr) {
			feet = append(feet, catalog.Foot{Name: n, Pattern: cat.FootCode(n)})
		}
		results = append(results, scansion.LineScansionResult{MeterName: name, FeetFlat: feetStr, Feet: feet})
	}

	dominant := scansion.ResolveDominant(cat, results)
	if jsonOutput {
		return printJSON(toDominantResultsJSON(dominant))
	}
	if len(dominant) == 0 {
		fmt.Println(color.RedString("no dominant meter resolved"))
		return nil
	}
	fmt.Printf("%s %s\n", color.CyanString("dominant meter:"), dominant[0].MeterName)
	for _, r := range dominant {
		fmt.Printf("  %s\n", colorizeFeet(r.FeetFlat))
	}
	return nil
}

type dominantResultJSON struct {
	MeterName string `json:"meter_name"`
	Feet      string `json:"feet"`
}

func toDominantResultsJSON(results []scansion.LineScansionResult) []dominantResultJSON {
	out := make([]dominantResultJSON, len(results))
	for i, r := range results {
		out[i] = dominantResultJSON{MeterName: r.MeterName, Feet: r.FeetFlat}
	}
	return out
}
