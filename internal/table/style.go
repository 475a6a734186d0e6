package table

// RowStyle is the border treatment of one output row. Every style is
// centered horizontally and vertically.
type RowStyle int

const (
	Plain     RowStyle = iota // no border
	Top                       // top medium
	Header                    // bottom thin
	TopHeader                 // top medium + bottom thin
	Bottom                    // bottom medium
)

var styleNames = map[RowStyle]string{
	Plain:     "plain",
	Top:       "top",
	Header:    "header",
	TopHeader: "top+header",
	Bottom:    "bottom",
}

func (s RowStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// Classify picks the style of row given the zero-based header row and the
// index of the last row. Rules are checked in order: first row, header row,
// last row. A header row that is also the last row stays a header row.
func Classify(row, header, last int) RowStyle {
	switch {
	case row == 0 && header == 0:
		return TopHeader
	case row == 0:
		return Top
	case row == header:
		return Header
	case row == last:
		return Bottom
	default:
		return Plain
	}
}
