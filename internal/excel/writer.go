package excel

import (
	"fmt"

	"scitblr/internal/logger"
	"scitblr/internal/table"

	"github.com/xuri/excelize/v2"
)

// Border line styles as numbered by excelize
const (
	borderThin   = 1
	borderMedium = 2
)

const outputSheet = "Sheet1"

// rowBorders maps each row style to its borders
var rowBorders = map[table.RowStyle][]excelize.Border{
	table.Plain: nil,
	table.Top: {
		{Type: "top", Color: "000000", Style: borderMedium},
	},
	table.Header: {
		{Type: "bottom", Color: "000000", Style: borderThin},
	},
	table.TopHeader: {
		{Type: "top", Color: "000000", Style: borderMedium},
		{Type: "bottom", Color: "000000", Style: borderThin},
	},
	table.Bottom: {
		{Type: "bottom", Color: "000000", Style: borderMedium},
	},
}

// WriteTable writes t into a new single-sheet workbook at outputPath, one
// row style per row. Nothing is written to disk unless every row succeeds.
func WriteTable(t *table.Table, outputPath string) error {
	editor := CreateNewFile()
	defer editor.Close()

	styles := make(map[table.RowStyle]int, len(rowBorders))
	for style, borders := range rowBorders {
		id, err := editor.NewRowStyle(borders)
		if err != nil {
			return fmt.Errorf("%w: failed to create %s style: %v", ErrWrite, style, err)
		}
		styles[style] = id
	}

	for r := 0; r <= t.RowCount; r++ {
		style := t.Style(r)
		if err := editor.WriteRow(outputSheet, r+1, t.Rows[r], styles[style]); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		logger.Debug("Wrote row", "row", r+1, "style", style.String())
	}

	if err := editor.SaveAs(outputPath); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, outputPath, err)
	}

	logger.Info("Saved formatted workbook", "path", outputPath, "rows", t.RowCount+1)
	return nil
}
