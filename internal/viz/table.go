package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/lvsim/internal/compare"
)

const tableHeader = "%5s %8s │ %10s %10s │ %10s %10s │ %9s %9s"

func formatRow(r compare.Row) string {
	return fmt.Sprintf("%5d %8.3f │ %10.4f %10.4f │ %10.4f %10.4f │ %9.4f %9.4f",
		r.Step, r.T, r.EulerP, r.EulerD, r.RK4P, r.RK4D, r.DiffP, r.DiffD)
}

// TableHeader is the column header line of ComparisonTable.
func TableHeader() string {
	return fmt.Sprintf(tableHeader, "step", "t", "euler P", "euler D", "rk4 P", "rk4 D", "diff P", "diff D")
}

// ComparisonRows renders rows [from, from+count) colored by band.
func ComparisonRows(c *compare.Comparison, from, count int) []string {
	from = max(0, min(from, c.Len()))
	to := min(c.Len(), from+count)

	lines := make([]string, 0, to-from)
	for k := from; k < to; k++ {
		r := c.Row(k)
		lines = append(lines, BandStyle(r.Band).Render(formatRow(r)))
	}
	return lines
}

// ComparisonTable renders the full iteration table with a summary of the
// final row. maxRows <= 0 prints every row; otherwise the table is
// thinned evenly and always ends on the final row.
func ComparisonTable(c *compare.Comparison, maxRows int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(TableHeader()))
	b.WriteString("\n")

	for _, k := range sampleIndices(c.Len(), maxRows) {
		r := c.Row(k)
		b.WriteString(BandStyle(r.Band).Render(formatRow(r)))
		b.WriteString("\n")
	}

	final := c.Final()
	dp, dd := c.MaxDiff()
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("final gap  "))
	b.WriteString(BandStyle(final.Band).Render(fmt.Sprintf("P %.4f  D %.4f  (%s)", final.DiffP, final.DiffD, final.Band)))
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("max gap    "))
	b.WriteString(MetricValue.Render(fmt.Sprintf("P %.4f  D %.4f", dp, dd)))
	b.WriteString("\n")
	return b.String()
}

func sampleIndices(n, maxRows int) []int {
	if maxRows <= 0 || n <= maxRows {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if maxRows == 1 {
		return []int{n - 1}
	}
	idx := make([]int, maxRows)
	for i := range idx {
		idx[i] = i * (n - 1) / (maxRows - 1)
	}
	return idx
}
