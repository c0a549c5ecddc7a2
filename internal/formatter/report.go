// Package formatter renders load results as markdown reports.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"quizload/internal/models"
	"quizload/internal/normalizer"
	"quizload/pkg/metadata"
	"quizload/pkg/utils"

	"github.com/mattn/go-runewidth"
)

// MaxCellWidth bounds raw row values echoed into the diagnostics table.
const MaxCellWidth = 40

// minColWidth is the shortest separator a column gets ("---").
const minColWidth = 3

// RenderReport builds a markdown summary of a batch. When sign is set the
// report carries a status block that metadata.Verify can check later.
func RenderReport(sourceName string, result *normalizer.Result, sign bool) string {
	var sb strings.Builder

	sb.WriteString("# Question load report\n\n")

	if sourceName != "" {
		fmt.Fprintf(&sb, "Source: `%s`\n\n", sourceName)
	}

	fmt.Fprintf(&sb, "- Rows read: %d\n", result.Rows)
	fmt.Fprintf(&sb, "- Questions: %d\n", len(result.Questions))
	fmt.Fprintf(&sb, "- Rejected: %d\n", len(result.Diagnostics))

	if result.Clean() {
		sb.WriteString("\nAll rows loaded.\n")
	} else {
		sb.WriteString("\n## Rejected rows\n\n")
		sb.WriteString(strings.Join(FormatTable(diagnosticRows(result.Diagnostics)), "\n"))
		sb.WriteString("\n")
	}

	report := sb.String()
	if !sign {
		return report
	}

	return metadata.Stamp(report, metadata.Status{
		Rows:     result.Rows,
		Rejected: len(result.Diagnostics),
		Clean:    result.Clean(),
	})
}

func diagnosticRows(diags []models.Diagnostic) [][]string {
	table := [][]string{
		{"Row", "ID", "Error", "Answer", "Choices"},
	}

	for _, d := range diags {
		table = append(table, []string{
			strconv.Itoa(d.RowNum),
			cell(d.Row[models.ColumnID]),
			cell(d.Error),
			cell(d.Row[models.ColumnAnswer]),
			cell(d.Row[models.ColumnChoices]),
		})
	}

	return table
}

func cell(s string) string {
	return utils.EscapeCell(utils.TruncateWidth(utils.SingleLine(s), MaxCellWidth))
}

// FormatTable renders rows as an aligned markdown table. The first row is the
// header; a separator row is inserted after it. Columns are padded by display
// width so CJK content lines up.
func FormatTable(table [][]string) []string {
	if len(table) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColWidth
	}

	for _, row := range table {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	result := make([]string, 0, len(table)+1)

	for i, row := range table {
		result = append(result, formatRow(row, colWidths))

		if i == 0 {
			result = append(result, separatorRow(colWidths))
		}
	}

	return result
}

func formatRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func separatorRow(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
