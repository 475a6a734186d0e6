package excel

import (
	"fmt"

	"scitblr/internal/logger"
	"scitblr/internal/table"

	"github.com/extrame/xls"
	"github.com/knieriem/odf/ods"
)

// sheetReader loads the first worksheet of a workbook as ragged text rows
type sheetReader func(path string) (sheet string, rows [][]string, err error)

// ReadTable reads the first worksheet of the workbook at path. headerRow is
// the 1-based row that separates column titles from data.
func ReadTable(path string, headerRow int) (*table.Table, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, Extension(path))
	}
	if headerRow < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHeaderRow, headerRow)
	}

	read, backend, err := pickReader(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Reading workbook", "path", path, "backend", backend)

	sheet, rows, err := read(path)
	if err != nil {
		return nil, err
	}

	t := table.New(usedRange(rows), headerRow, path)
	t.SheetName = sheet
	if t.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptySheet, path)
	}

	logger.Info("Read worksheet",
		"path", path,
		"sheet", sheet,
		"rows", t.RowCount+1,
		"columns", t.ColumnCount+1)
	return t, nil
}

// pickReader chooses a backend from the extension and the file's magic
// bytes, so a mislabelled .xls that is really OOXML is still readable.
func pickReader(path string) (sheetReader, string, error) {
	if Extension(path) == "ods" {
		return readODS, "ods", nil
	}

	container, err := detectContainer(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if container == containerOLE2 {
		return readXLS, "xls", nil
	}
	return readOOXML, "ooxml", nil
}

func readOOXML(path string) (string, [][]string, error) {
	editor, err := OpenFile(path)
	if err != nil {
		return "", nil, err
	}
	defer editor.Close()

	sheet := editor.FirstSheet()
	if sheet == "" {
		return "", nil, fmt.Errorf("%w: %s has no worksheets", ErrEmptySheet, path)
	}

	rows, err := editor.GetAllRows(sheet)
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to read sheet %s: %v", ErrOpen, sheet, err)
	}
	return sheet, rows, nil
}

func readXLS(path string) (string, [][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if wb.NumSheets() == 0 {
		return "", nil, fmt.Errorf("%w: %s has no worksheets", ErrEmptySheet, path)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return "", nil, fmt.Errorf("%w: failed to load first sheet of %s", ErrOpen, path)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}
	return sheet.Name, rows, nil
}

// xlsRow returns row i of sheet, or nil for a row without records.
// WorkSheet.Row dereferences the missing row and panics instead.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func readODS(path string) (string, [][]string, error) {
	f, err := ods.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	var doc ods.Doc
	if err := f.ParseContent(&doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if len(doc.Table) == 0 {
		return "", nil, fmt.Errorf("%w: %s has no worksheets", ErrEmptySheet, path)
	}

	first := doc.Table[0]
	return first.Name, first.Strings(), nil
}

// usedRange crops rows to the smallest rectangle holding every non-empty
// cell. Row 0 of the result is the first row with content and column 0 the
// first column with content; empty rows inside the range are kept.
func usedRange(rows [][]string) [][]string {
	top, bottom, left := -1, -1, -1
	for i, row := range rows {
		for j, cell := range row {
			if cell == "" {
				continue
			}
			if top < 0 {
				top = i
			}
			bottom = i
			if left < 0 || j < left {
				left = j
			}
			break
		}
	}
	if top < 0 {
		return nil
	}

	used := make([][]string, 0, bottom-top+1)
	for _, row := range rows[top : bottom+1] {
		end := len(row)
		for end > 0 && row[end-1] == "" {
			end--
		}
		if end <= left {
			used = append(used, nil)
			continue
		}
		used = append(used, row[left:end])
	}
	return used
}
