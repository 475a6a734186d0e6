package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Editor wraps an excelize workbook.
type Editor struct {
	file *excelize.File
}

// OpenFile opens an existing OOXML workbook
func OpenFile(path string) (*Editor, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return &Editor{file: file}, nil
}

// CreateNewFile creates a new workbook in memory with a single sheet
func CreateNewFile() *Editor {
	return &Editor{file: excelize.NewFile()}
}

// GetSheetNames returns all sheet names in workbook order
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// FirstSheet returns the name of the first sheet, or "" for a workbook
// without sheets
func (e *Editor) FirstSheet() string {
	names := e.GetSheetNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// GetAllRows returns the formatted text of every row of a sheet, starting
// at row 1. Trailing empty cells of a row are omitted.
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// NewRowStyle registers a centered cell style with the given borders
func (e *Editor) NewRowStyle(borders []excelize.Border) (int, error) {
	return e.file.NewStyle(&excelize.Style{
		Border: borders,
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// WriteRow writes cells as text starting at column A of the 1-based row and
// applies styleID across the written range.
func (e *Editor) WriteRow(sheet string, row int, cells []string, styleID int) error {
	if len(cells) == 0 {
		return nil
	}

	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cells), row)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}
	if err := e.file.SetSheetRow(sheet, first, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	if err := e.file.SetCellStyle(sheet, first, last, styleID); err != nil {
		return fmt.Errorf("failed to style row %d: %w", row, err)
	}
	return nil
}

// SaveAs saves the workbook with a new name
func (e *Editor) SaveAs(path string) error {
	return e.file.SaveAs(path)
}

// Close closes the workbook
func (e *Editor) Close() error {
	return e.file.Close()
}
