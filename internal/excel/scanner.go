package excel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// findWorkbooks returns all supported workbooks below dir, skipping earlier
// outputs (stem ending in suffix) and Office lock files.
func findWorkbooks(dir, suffix string) ([]string, error) {
	var workbooks []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsSupported(path) {
			return nil
		}

		name := filepath.Base(path)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.HasPrefix(name, "~$") || strings.HasSuffix(stem, suffix) {
			return nil
		}

		workbooks = append(workbooks, path)
		return nil
	})

	sort.Strings(workbooks)
	return workbooks, err
}
