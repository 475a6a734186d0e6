package excel

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows into the first sheet of a new OOXML workbook
func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	writeWorkbookAt(t, path, 1, 1, rows)
}

// writeWorkbookAt is writeWorkbook with the first row anchored at the
// 1-based col and row instead of A1
func writeWorkbookAt(t *testing.T, path string, col, row int, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, values := range rows {
		if len(values) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}
	require.NoError(t, f.SaveAs(path))
}

func stringRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = make([]interface{}, len(row))
		for j, cell := range row {
			out[i][j] = cell
		}
	}
	return out
}

// cellBorders returns border side -> line style for a cell of the output
func cellBorders(t *testing.T, f *excelize.File, cell string) map[string]int {
	t.Helper()

	id, err := f.GetCellStyle(outputSheet, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)

	borders := make(map[string]int)
	for _, b := range style.Border {
		if b.Style != 0 {
			borders[b.Type] = b.Style
		}
	}
	return borders
}

func cellAlignment(t *testing.T, f *excelize.File, cell string) *excelize.Alignment {
	t.Helper()

	id, err := f.GetCellStyle(outputSheet, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style.Alignment
}

// writeODS builds a minimal OpenDocument spreadsheet with one table
func writeODS(t *testing.T, path, sheet string, rows [][]string) {
	t.Helper()

	var body strings.Builder
	for _, row := range rows {
		body.WriteString("<table:table-row>")
		for _, cell := range row {
			fmt.Fprintf(&body, `<table:table-cell office:value-type="string"><text:p>%s</text:p></table:table-cell>`, cell)
		}
		body.WriteString("</table:table-row>")
	}

	content := `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content
 xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
 xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
 xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
 office:version="1.2">
<office:body><office:spreadsheet>
<table:table table:name="` + sheet + `">
<table:table-column table:number-columns-repeated="` + fmt.Sprint(len(rows[0])) + `"/>
` + body.String() + `
</table:table>
</office:spreadsheet></office:body>
</office:document-content>`

	manifest := `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.spreadsheet"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>`

	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	zw := zip.NewWriter(out)
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	require.NoError(t, err)
	_, err = mt.Write([]byte("application/vnd.oasis.opendocument.spreadsheet"))
	require.NoError(t, err)

	for name, data := range map[string]string{
		"content.xml":           content,
		"META-INF/manifest.xml": manifest,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, filepath.Base(e.Name()))
	}
	return names
}
