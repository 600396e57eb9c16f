package pp

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderASCII   BorderStyle = iota // +-+|
	BorderNone                       // No borders, space-separated columns
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"ascii":   BorderASCII,
	"none":    BorderNone,
	"rounded": BorderRounded,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name ("ascii", "none", "rounded",
// "heavy", "double"). The empty string selects [BorderASCII].
func ParseBorder(s string) (BorderStyle, error) {
	if s == "" {
		return BorderASCII, nil
	}
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown border style %q", s)
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// layout flattens a shape into an optional header row and a single data
// row. Only mappings have a header.
func layout(s Shape) (header, row []string, err error) {
	switch v := s.(type) {
	case Mapping:
		return v.Keys(), v.Values(), nil
	case Sequence:
		return nil, v.Items, nil
	case Collection:
		return nil, v.Items, nil
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
}

// EncodeTable renders s as an aligned table. Mappings get a header row of
// keys above a row of values; sequences and collections are a single row.
// Cells containing line breaks span several lines. An empty shape renders
// as the empty string.
func EncodeTable(s Shape, border BorderStyle) (string, error) {
	header, row, err := layout(s)
	if err != nil {
		return "", err
	}
	if len(row) == 0 {
		return "", nil
	}
	var sb strings.Builder
	if err := writeTable(&sb, header, row, border); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeTable(w io.Writer, header, row []string, border BorderStyle) error {
	widths := computeWidths(header, row)
	if border == BorderNone {
		return renderPlainTable(w, header, row, widths)
	}
	bc, ok := borderSets[border]
	if !ok {
		return fmt.Errorf("unknown border style %d", int(border))
	}
	return renderBorderedTable(w, header, row, widths, bc)
}

func computeWidths(header, row []string) []int {
	widths := make([]int, max(len(header), len(row)))
	for _, cells := range [][]string{header, row} {
		for i, cell := range cells {
			for _, line := range cellLines(cell) {
				if w := runewidth.StringWidth(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

// --- Multi-line cells ---

// cellLines splits a cell on line breaks. A trailing \r on a line is dropped.
func cellLines(cell string) []string {
	lines := strings.Split(cell, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// splitRow returns the lines of every column, padding short rows with
// empty cells.
func splitRow(cells []string, numCols int) [][]string {
	split := make([][]string, numCols)
	for i := range split {
		split[i] = cellLines(cellAt(cells, i))
	}
	return split
}

func maxLines(split [][]string) int {
	n := 1
	for _, lines := range split {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header, row []string, widths []int) error {
	if len(header) > 0 {
		if err := writePlainRow(w, header, widths); err != nil {
			return err
		}
		if err := writePlainSep(w, widths); err != nil {
			return err
		}
	}
	return writePlainRow(w, row, widths)
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	split := splitRow(cells, len(widths))
	for line, n := 0, maxLines(split); line < n; line++ {
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = padCell(cellAt(split[i], line), width)
		}
		text := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, header, row []string, widths []int, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(header) > 0 {
		if err := drawBorderedRow(w, header, widths, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	if err := drawBorderedRow(w, row, widths, bc.vertical); err != nil {
		return err
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, vert string) error {
	split := splitRow(cells, len(widths))
	for line, n := 0, maxLines(split); line < n; line++ {
		var sb strings.Builder
		sb.WriteString(vert)
		for i, width := range widths {
			sb.WriteString(" ")
			sb.WriteString(padCell(cellAt(split[i], line), width))
			sb.WriteString(" ")
			sb.WriteString(vert)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// padCell left-aligns s within width display columns.
func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
