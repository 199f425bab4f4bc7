package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jacksmith/bag/internal/model"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ConfigureColor applies a color mode ("auto", "always" or "never").
// In auto mode colors are used only when w is a terminal.
func ConfigureColor(mode string, w io.Writer) {
	switch mode {
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	default:
		colorEnabled = IsTerminal(w)
	}
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w any) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Bold returns s wrapped in bold ANSI codes if colors are enabled.
func Bold(s string) string { return paint(colorBold, s) }

// Table formats columnar output. Columns marked numeric are right-aligned.
type Table struct {
	header    []string
	rows      [][]string
	colWidths []int
	numeric   map[int]bool
}

// NewTable creates a new table with an optional header row.
func NewTable(header ...string) *Table {
	t := &Table{numeric: make(map[int]bool)}
	if len(header) > 0 {
		t.header = header
		t.track(header)
	}
	return t
}

// AlignRight marks columns as right-aligned.
func (t *Table) AlignRight(cols ...int) {
	for _, c := range cols {
		t.numeric[c] = true
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.track(cols)
	t.rows = append(t.rows, cols)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) track(cols []string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		if w := visibleWidth(col); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	if t.header != nil {
		t.renderRow(w, t.header, Bold)
	}
	for _, row := range t.rows {
		t.renderRow(w, row, nil)
	}
}

func (t *Table) renderRow(w io.Writer, row []string, style func(string) string) {
	parts := make([]string, len(row))
	for i, col := range row {
		padding := strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
		if style != nil {
			col = style(col)
		}
		switch {
		case t.numeric[i]:
			parts[i] = padding + col
		case i < len(row)-1:
			parts[i] = col + padding
		default:
			parts[i] = col
		}
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// ItemTable builds a table listing items with their position.
func ItemTable(items []model.Item) *Table {
	t := NewTable("#", "NAME", "CATEGORY", "QTY")
	t.AlignRight(0, 3)
	for i, it := range items {
		t.AddRow(strconv.Itoa(i), it.Name, it.Category, FormatQuantity(it.Quantity))
	}
	return t
}

// FormatQuantity renders a quantity, highlighting values below one.
func FormatQuantity(q int) string {
	s := strconv.Itoa(q)
	if q < 1 {
		return Yellow(s)
	}
	return s
}

// FormatItem renders a single item on one line.
func FormatItem(it model.Item) string {
	return fmt.Sprintf("%s (%s) x%s", Bold(it.Name), it.Category, FormatQuantity(it.Quantity))
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}

	return width
}
