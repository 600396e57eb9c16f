package pp

import (
	"encoding/csv"
	"strings"
)

// CSVOptions controls delimited output.
type CSVOptions struct {
	// Delimiter separates fields. Zero means comma.
	Delimiter rune
	// UseCRLF terminates records with \r\n instead of \n.
	UseCRLF bool
}

// EncodeCSV renders s with the same row layout as [EncodeTable]: a header
// record of keys for mappings, then a single data record.
func EncodeCSV(s Shape, opts CSVOptions) (string, error) {
	header, row, err := layout(s)
	if err != nil {
		return "", err
	}
	if len(row) == 0 {
		return "", nil
	}
	var sb strings.Builder
	cw := csv.NewWriter(&sb)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}
	cw.UseCRLF = opts.UseCRLF
	if len(header) > 0 {
		if err := writeRecord(&sb, cw, header); err != nil {
			return "", err
		}
	}
	if err := writeRecord(&sb, cw, row); err != nil {
		return "", err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeRecord writes record through cw, except that a record holding one
// empty field is written as "" so readers do not take it for a blank line.
func writeRecord(sb *strings.Builder, cw *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	sb.WriteString(`""`)
	if cw.UseCRLF {
		sb.WriteString("\r\n")
	} else {
		sb.WriteString("\n")
	}
	return nil
}
