package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/stripecheck/stripecheck/pkg/result"
	"github.com/stripecheck/stripecheck/pkg/ui"
)

// Column width caps. Result cells hold indented JSON bodies and would
// otherwise dominate the terminal.
const (
	maxTestWidth   = 24
	maxResultWidth = 60
	maxStatusWidth = 44
)

// boxChars contains Unicode box-drawing characters.
var boxChars = struct {
	TopLeft, TopRight, BottomLeft, BottomRight   string
	Horizontal, Vertical                         string
	TopTee, BottomTee, LeftTee, RightTee, Middle string
}{
	"┌", "┐", "└", "┘", "─", "│", "┬", "┴", "├", "┤", "┼",
}

// asciiChars contains ASCII fallback characters for box drawing.
var asciiChars = struct {
	TopLeft, TopRight, BottomLeft, BottomRight   string
	Horizontal, Vertical                         string
	TopTee, BottomTee, LeftTee, RightTee, Middle string
}{
	"+", "+", "+", "+", "-", "|", "+", "+", "+", "+", "+",
}

// TableConfig configures the console table rendering.
type TableConfig struct {
	// ColorEnabled enables ANSI color output. Auto-detected from the
	// writer when left unset.
	ColorEnabled bool

	// DisableUnicode switches to ASCII box drawing.
	DisableUnicode bool
}

// TableWriter renders a report as a three-column console table. The
// output writer is injected so tests can capture the rendering.
type TableWriter struct {
	w      io.Writer
	config TableConfig
	chars  *struct {
		TopLeft, TopRight, BottomLeft, BottomRight   string
		Horizontal, Vertical                         string
		TopTee, BottomTee, LeftTee, RightTee, Middle string
	}
}

// NewTableWriter creates a table writer. Color support is auto-detected
// from the writer unless explicitly enabled.
func NewTableWriter(w io.Writer, config TableConfig) *TableWriter {
	if !config.ColorEnabled {
		config.ColorEnabled = ui.DetectColorSupport(w) && !ui.IsNoColor()
	}
	chars := &boxChars
	if config.DisableUnicode {
		chars = &asciiChars
	}
	return &TableWriter{w: w, config: config, chars: chars}
}

// Write renders the report's rows as a table titled "Test Results".
func (tw *TableWriter) Write(report *result.Report) error {
	rows := report.Rows()

	header := []string{"Test", "Result", "Status"}
	caps := []int{maxTestWidth, maxResultWidth, maxStatusWidth}

	// Split every cell into capped lines and size the columns.
	widths := []int{len(header[0]), len(header[1]), len(header[2])}
	cells := make([][][]string, len(rows))
	for i, row := range rows {
		cells[i] = [][]string{
			splitCell(row.Test, caps[0]),
			splitCell(row.Result, caps[1]),
			splitCell(row.Status, caps[2]),
		}
		for col, lines := range cells[i] {
			for _, line := range lines {
				// Rune count, to match truncate and fmt's %-*s padding.
				if n := utf8.RuneCountInString(line); n > widths[col] {
					widths[col] = n
				}
			}
		}
	}

	var b strings.Builder
	title := "Test Results"
	b.WriteString(tw.bold(title) + "\n")
	tw.writeBorder(&b, widths, tw.chars.TopLeft, tw.chars.TopTee, tw.chars.TopRight)
	tw.writeLine(&b, widths, []string{header[0], header[1], header[2]}, true, "")
	tw.writeBorder(&b, widths, tw.chars.LeftTee, tw.chars.Middle, tw.chars.RightTee)
	for i := range cells {
		tw.writeRow(&b, widths, cells[i], rows[i].Status)
	}
	tw.writeBorder(&b, widths, tw.chars.BottomLeft, tw.chars.BottomTee, tw.chars.BottomRight)

	_, err := io.WriteString(tw.w, b.String())
	return err
}

// writeRow renders one logical row, which spans as many physical lines
// as its tallest cell.
func (tw *TableWriter) writeRow(b *strings.Builder, widths []int, cell [][]string, status string) {
	height := 0
	for _, lines := range cell {
		if len(lines) > height {
			height = len(lines)
		}
	}
	for line := 0; line < height; line++ {
		row := make([]string, len(cell))
		for col, lines := range cell {
			if line < len(lines) {
				row[col] = lines[line]
			}
		}
		tw.writeLine(b, widths, row, false, status)
	}
}

// writeLine renders one physical line. The status column is colored by
// the row's overall status so wrapped FAIL summaries stay red.
func (tw *TableWriter) writeLine(b *strings.Builder, widths []int, cols []string, isHeader bool, status string) {
	b.WriteString(tw.chars.Vertical)
	for col, text := range cols {
		padded := fmt.Sprintf(" %-*s ", widths[col], text)
		switch {
		case isHeader:
			padded = tw.bold(padded)
		case col == 2 && text != "":
			padded = tw.colorStatus(padded, status)
		}
		b.WriteString(padded)
		b.WriteString(tw.chars.Vertical)
	}
	b.WriteString("\n")
}

func (tw *TableWriter) writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat(tw.chars.Horizontal, w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func (tw *TableWriter) bold(s string) string {
	if !tw.config.ColorEnabled {
		return s
	}
	return ui.Bold + s + ui.Reset
}

func (tw *TableWriter) colorStatus(s, status string) string {
	if !tw.config.ColorEnabled {
		return s
	}
	if strings.HasPrefix(status, "PASS") {
		return ui.Green + s + ui.Reset
	}
	return ui.Red + s + ui.Reset
}

// splitCell breaks a cell into lines and truncates each to the cap.
func splitCell(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = truncate(line, width)
	}
	return lines
}

// truncate shortens a line to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen > 3 {
		return string(runes[:maxLen-3]) + "..."
	}
	return string(runes[:maxLen])
}
