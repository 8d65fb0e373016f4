package encoding

// EncodeGridMeta produces the title/description pair for a single-valued
// meta row (location, time, video link) attached to a named planner row.
// The title carries the scalar value verbatim; what the value means is
// entirely the row name's business.
func EncodeGridMeta(rowName, value string) (title, description string) {
	return value, gridMetaSentinel(rowName)
}

// DecodeGridMeta parses a grid-meta record. ok is false when the
// description does not start with the grid-meta sentinel.
func DecodeGridMeta(description, title string) (rowName, value string, ok bool) {
	rowName, ok = GridMetaRow(description)
	if !ok {
		return "", "", false
	}
	return rowName, title, true
}
