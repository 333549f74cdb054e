package quality

import (
	"fmt"
	"io"
	"strings"
)

// WriteEvaluation renders the ground truth table for one scorer: a row per
// category with hit counts and percentages, a TOTAL row, and the skip and
// top-N footnotes.
func WriteEvaluation(w io.Writer, scorerName string, ev *Evaluation) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== Ground Truth Evaluation ===\n\n")

	header := fmt.Sprintf("%-30s %7s  %14s", "Category", "Queries", scorerName)
	fmt.Fprintln(&b, header)
	fmt.Fprintln(&b, strings.Repeat("-", len(header)))

	for _, c := range ev.Categories {
		fmt.Fprintf(&b, "%-30s %7d  %3d/%d %3d%%\n",
			c.Display, c.QueryCount, c.Hits, c.QueryCount, c.Percent())
	}

	fmt.Fprintln(&b, strings.Repeat("-", len(header)))
	fmt.Fprintf(&b, "%-30s %7d  %3d/%d %3d%%\n",
		"TOTAL", ev.Evaluated, ev.Hits, ev.Evaluated, ev.Percent())

	fmt.Fprintf(&b, "\nNote: %d queries skipped (no expected name).\n", ev.Skipped)
	fmt.Fprintln(&b, "Typo, prefix, and abbreviation categories use top-5 (correct result in first 5); all others use top-1.")

	_, err := io.WriteString(w, b.String())
	return err
}
