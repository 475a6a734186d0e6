package excel

import "errors"

var (
	ErrNotFound             = errors.New("file not found")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrInvalidHeaderRow     = errors.New("header row must be >= 1")
	ErrOpen                 = errors.New("failed to open workbook")
	ErrEmptySheet           = errors.New("first worksheet is empty")
	ErrWrite                = errors.New("failed to write workbook")
	ErrSkipped              = errors.New("write declined")
)
