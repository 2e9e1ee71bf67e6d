package ranking

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/kmori/sightswipe/internal/model"
)

const (
	minBarWidth = 6
	maxBarWidth = 20
)

// RenderRanking prints the weak-word ranking as a table. totalWidth sizes
// the unknown-rate bar; pass 0 when the terminal width is unknown.
func RenderRanking(w io.Writer, entries []model.RankEntry, totalWidth int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No answers logged yet. Run a drill first.")
		return err
	}

	barWidth := barWidthFor(totalWidth)
	headers := []string{"#", "Word", "Translation", "Miss", "", "Unknown", "Known", "Total", "Last"}
	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			entry.Word,
			entry.Translation,
			fmt.Sprintf("%d%%", int(math.Round(entry.UnknownRate*100))),
			rateBar(entry.UnknownRate, barWidth),
			fmt.Sprintf("%d", entry.Unknown),
			fmt.Sprintf("%d", entry.Known),
			fmt.Sprintf("%d", entry.Total),
			formatLast(entry.Last),
		})
	}

	rightAlign := map[int]bool{0: true, 3: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func barWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minBarWidth
	}
	width := totalWidth / 8
	if width < minBarWidth {
		width = minBarWidth
	}
	if width > maxBarWidth {
		width = maxBarWidth
	}
	return width
}

func rateBar(rate float64, width int) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	filled := int(math.Round(rate * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatLast(last *time.Time) string {
	if last == nil {
		return "-"
	}
	return last.Local().Format("2006-01-02 15:04")
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
	return strings.TrimRight(b.String(), " ")
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

// Translations are mostly double-width kana, so cell widths must use
// terminal columns rather than rune counts.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
