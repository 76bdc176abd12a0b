// Package stats scores sessions and renders the result report.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"wpm/internal/model"
)

// RenderComparison prints the per-position prompt/typed comparison used by
// debug mode.
func RenderComparison(w io.Writer, session model.Session) error {
	n := len(session.Prompted)
	if len(session.Typed) < n {
		n = len(session.Typed)
	}
	if n == 0 {
		_, err := fmt.Fprintln(w, "No responses recorded.")
		return err
	}
	headers := []string{"#", "Prompt", "Typed", "Match"}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		match := "no"
		if session.Prompted[i] == session.Typed[i] {
			match = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			session.Prompted[i],
			session.Typed[i],
			match,
		})
	}
	rightAlign := map[int]bool{0: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
