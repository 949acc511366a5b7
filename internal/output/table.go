package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/inodb/trinuc/internal/trinuc"
)

// RenderResultTable renders outcomes as a human-readable table with a
// totals footer.
func RenderResultTable(res *trinuc.Result) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Mutation", "Position", "Context", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, o := range res.Outcomes {
		if !o.OK() {
			table.Append([]string{o.Token, "-", "-", o.Err.Message})
			continue
		}
		status := "counted"
		if !o.Context.IsCanonical() {
			status = "not counted"
		}
		table.Append([]string{o.Token, strconv.Itoa(o.Context.Position), o.Context.Notation, status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(res.Outcomes)),
		"",
		fmt.Sprintf("OK %d", res.Succeeded()),
		fmt.Sprintf("Counted %d", res.Counted()),
	})

	table.Render()
	return buf.String()
}

// RenderSpectrumTable renders the contexts with a non-zero count, in
// catalog order, with their share of the counted total.
func RenderSpectrumTable(counts trinuc.CountTable) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Context", "Count", "Fraction"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	total := counts.Total()
	nonZero := 0
	for _, c := range trinuc.AllContexts() {
		n := counts[c]
		if n == 0 {
			continue
		}
		nonZero++
		table.Append([]string{c, strconv.Itoa(n), fmt.Sprintf("%.3f", float64(n)/float64(total))})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d of %d contexts", nonZero, trinuc.CatalogSize),
		strconv.Itoa(total),
		"",
	})

	table.Render()
	return buf.String()
}
