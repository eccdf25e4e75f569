package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
	"github.com/tariquesani/aruuz-nigar/internal/scansion"
	"github.com/tariquesani/aruuz-nigar/internal/transducer"
)

var (
	freeVerse      bool
	includeSpecial bool
	rubaiOnly      bool
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <line>",
		Short: "exact-scan a line (already in -/=/x code form) against the meter catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	cmd.Flags().BoolVar(&freeVerse, "free-verse", false, "relax matching to any meter prefix (spec.md §4.3)")
	cmd.Flags().BoolVar(&includeSpecial, "special", false, "also try the Hindi/Zamzama special meters")
	cmd.Flags().BoolVar(&rubaiOnly, "rubai", false, "restrict the search to the rubaʿi pool")
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	cat := catalog.BuildCatalog()
	line, err := transducer.FromDirectCode(args[0])
	if err != nil {
		return err
	}

	opts := scansion.Options{
		FreeVerse:      freeVerse,
		IncludeSpecial: includeSpecial,
		RubaiOnly:      rubaiOnly,
	}
	results, err := scansion.ScanLine(cat, line, opts)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(toScanResultsJSON(results))
	}
	if len(results) == 0 {
		fmt.Println(color.RedString("no exact match"))
		return nil
	}
	for _, r := range results {
		printResult(r)
	}
	return nil
}

func newFuzzyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzzy <line>",
		Short: "fuzzy-scan a line, allowing up to --error-param wildcard-aware edits",
		Args:  cobra.ExactArgs(1),
		RunE:  runFuzzy,
	}
	return cmd
}

func runFuzzy(cmd *cobra.Command, args []string) error {
	cat := catalog.BuildCatalog()
	line, err := transducer.FromDirectCode(args[0])
	if err != nil {
		return err
	}

	opts := scansion.Options{Fuzzy: true, ErrorParam: errorParam}
	results, err := scansion.ScanLineFuzzy(cat, line, opts)
	if err != nil {
		return err
	}
	resolved := scansion.ResolveDominantFuzzy(cat, results)
	if jsonOutput {
		return printJSON(toFuzzyResultsJSON(resolved))
	}
	if len(resolved) == 0 {
		fmt.Println(color.RedString("no candidate within error-param %d", errorParam))
		return nil
	}
	for _, r := range resolved {
		printResult(r.LineScansionResult)
		fmt.Printf("  %s %d\n", color.YellowString("score"), r.Score)
	}
	return nil
}

// scanResultJSON is the CLI's own --json shape for a single scan
// result — deliberately separate from internal/httpapi's response
// types, since the two surfaces evolve independently.
type scanResultJSON struct {
	MeterName  string `json:"meter_name"`
	MeterRoman string `json:"meter_roman"`
	Code       string `json:"code"`
	Feet       string `json:"feet"`
}

type fuzzyResultJSON struct {
	scanResultJSON
	Score int `json:"score"`
}

func toScanResultsJSON(results []scansion.LineScansionResult) []scanResultJSON {
	out := make([]scanResultJSON, len(results))
	for i, r := range results {
		out[i] = scanResultJSON{MeterName: r.MeterName, MeterRoman: r.RomanName, Code: r.Code, Feet: r.FeetFlat}
	}
	return out
}

func toFuzzyResultsJSON(results []scansion.LineScansionResultFuzzy) []fuzzyResultJSON {
	out := make([]fuzzyResultJSON, len(results))
	for i, r := range results {
		out[i] = fuzzyResultJSON{
			scanResultJSON: scanResultJSON{MeterName: r.MeterName, MeterRoman: r.RomanName, Code: r.Code, Feet: r.FeetFlat},
			Score:          r.Score,
		}
	}
	return out
}

func printResult(r scansion.LineScansionResult) {
	fmt.Printf("%s %s (%s)\n", color.CyanString("meter:"), r.MeterName, r.RomanName)
	fmt.Printf("  %s %s\n", color.GreenString("code:"), r.Code)
	fmt.Printf("  %s %s\n", color.GreenString("feet:"), colorizeFeet(r.FeetFlat))
}

func colorizeFeet(feet string) string {
	parts := strings.Fields(feet)
	for i, p := range parts {
		parts[i] = color.MagentaString(p)
	}
	return strings.Join(parts, " ")
}
