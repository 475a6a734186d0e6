package excel

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the input extensions accepted by the reader
var SupportedExtensions = []string{"xlsx", "xls", "xlsm", "ods"}

// containerFormat is the binary container detected from a file's first bytes
type containerFormat int

const (
	containerUnknown containerFormat = iota
	containerOLE2                    // BIFF .xls (magic: d0cf11e0a1b11ae1)
	containerZIP                     // OOXML and OpenDocument (magic: 504b0304)
)

// Extension returns the lower-case extension of path without the dot
func Extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// IsSupported reports whether path has one of the accepted extensions
func IsSupported(path string) bool {
	ext := Extension(path)
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// detectContainer reads the first bytes of a file and returns the container
func detectContainer(filePath string) (containerFormat, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return containerUnknown, err
	}
	defer f.Close()

	buf := make([]byte, 8)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return containerUnknown, err
	}
	if n < 4 {
		return containerUnknown, nil
	}

	if buf[0] == 0xd0 && buf[1] == 0xcf && buf[2] == 0x11 && buf[3] == 0xe0 {
		return containerOLE2, nil
	}
	if buf[0] == 0x50 && buf[1] == 0x4b && buf[2] == 0x03 && buf[3] == 0x04 {
		return containerZIP, nil
	}
	return containerUnknown, nil
}
