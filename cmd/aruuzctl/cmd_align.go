package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tariquesani/aruuz-nigar/internal/aligner"
)

func newAlignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align <pattern> <code>",
		Short: "run the wildcard-aware Levenshtein aligner directly, printing the edit script",
		Args:  cobra.ExactArgs(2),
		RunE:  runAlign,
	}
	return cmd
}

func runAlign(cmd *cobra.Command, args []string) error {
	pattern, code := args[0], args[1]
	distance, ops, leverage := aligner.Align(pattern, code)

	if jsonOutput {
		return printJSON(alignResultJSON{
			Distance: distance,
			EditOps:  toEditOpsJSON(ops),
			Leverage: toLeverageJSON(leverage),
		})
	}

	fmt.Printf("%s %d\n", color.CyanString("distance:"), distance)
	for _, op := range ops {
		switch op.Op {
		case aligner.OpMatch:
			fmt.Println(color.GreenString("  %s", op.String()))
		case aligner.OpSubstitute:
			fmt.Println(color.YellowString("  %s", op.String()))
		default:
			fmt.Println(color.RedString("  %s", op.String()))
		}
	}
	if len(leverage) > 0 {
		fmt.Print(color.CyanString("leverage: "))
		for _, l := range leverage {
			fmt.Printf("[%d,%d) ", l.Start, l.End)
		}
		fmt.Println()
	}
	return nil
}

type editOpJSON struct {
	Op          string `json:"op"`
	PatternPos  int    `json:"pattern_pos"`
	CodePos     int    `json:"code_pos"`
	PatternChar string `json:"pattern_char,omitempty"`
	CodeChar    string `json:"code_char,omitempty"`
}

type leverageJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type alignResultJSON struct {
	Distance int            `json:"distance"`
	EditOps  []editOpJSON   `json:"edit_ops"`
	Leverage []leverageJSON `json:"leverage"`
}

func toEditOpsJSON(ops []aligner.EditOp) []editOpJSON {
	out := make([]editOpJSON, len(ops))
	for i, o := range ops {
		e := editOpJSON{Op: o.Op.String(), PatternPos: o.PatternPos, CodePos: o.CodePos}
		if o.PatternChar != 0 {
			e.PatternChar = string(o.PatternChar)
		}
		if o.CodeChar != 0 {
			e.CodeChar = string(o.CodeChar)
		}
		out[i] = e
	}
	return out
}

func toLeverageJSON(leverage []aligner.Leverage) []leverageJSON {
	out := make([]leverageJSON, len(leverage))
	for i, l := range leverage {
		out[i] = leverageJSON{Start: l.Start, End: l.End}
	}
	return out
}
