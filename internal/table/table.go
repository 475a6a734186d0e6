package table

import (
	"path/filepath"
	"strings"
)

// Table is the first worksheet of a source workbook flattened to text.
// Rows are rectangular: every row holds ColumnCount+1 cells.
type Table struct {
	Rows        [][]string
	RowCount    int // index of the last row
	ColumnCount int // index of the last column
	HeaderIndex int // zero-based header row
	SheetName   string

	Dir  string
	Stem string
	Ext  string // without the leading dot
}

// New builds a Table from possibly ragged rows, padding short rows with
// empty cells. headerRow is 1-based. The source path is only used to derive
// the output location.
func New(rows [][]string, headerRow int, sourcePath string) *Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		padded[i] = cells
	}

	ext := filepath.Ext(sourcePath)
	return &Table{
		Rows:        padded,
		RowCount:    len(padded) - 1,
		ColumnCount: width - 1,
		HeaderIndex: headerRow - 1,
		Dir:         filepath.Dir(sourcePath),
		Stem:        strings.TrimSuffix(filepath.Base(sourcePath), ext),
		Ext:         strings.TrimPrefix(ext, "."),
	}
}

// Empty reports whether the table has no cells at all
func (t *Table) Empty() bool {
	return t.RowCount < 0 || t.ColumnCount < 0
}

// Style returns the row style of row r
func (t *Table) Style(r int) RowStyle {
	return Classify(r, t.HeaderIndex, t.RowCount)
}

// OutputPath returns <dir>/<stem><suffix>.<ext>. Extensions the OOXML
// writer cannot produce are replaced by xlsx.
func (t *Table) OutputPath(suffix string) string {
	return filepath.Join(t.Dir, t.Stem+suffix+"."+OutputExt(t.Ext))
}

// OutputExt maps a source extension to the extension of the formatted copy.
// xlsx and xlsm keep their original spelling.
func OutputExt(ext string) string {
	switch strings.ToLower(ext) {
	case "xlsx", "xlsm":
		return ext
	default:
		return "xlsx"
	}
}
