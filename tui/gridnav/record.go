package gridnav

// Record is an opaque item rendered into one grid cell. The only key this
// package ever writes is the index field passed to MakeBlankCell.
type Record map[string]any

// DefaultIndexField is the field stamped on blank cells when none is given.
const DefaultIndexField = "id"

// MakeBlankCell returns a copy of template with indexField set to index.
// The template itself is left untouched so it can be reused for every pad cell.
func MakeBlankCell(template Record, indexField string, index int) Record {
	cell := make(Record, len(template)+1)
	for k, v := range template {
		cell[k] = v
	}
	cell[indexField] = index
	return cell
}

// IsBlank reports whether r carries the blank marker field set by the grid
// component when it pads the last row.
func (r Record) IsBlank() bool {
	v, ok := r[BlankMarkerField].(bool)
	return ok && v
}

// BlankMarkerField is set to true on templates built by BlankTemplate.
const BlankMarkerField = "_blank"

// BlankTemplate returns base extended with the blank marker. Callers that do
// not need to tell pad cells apart can pass any Record to BuildGrid instead.
func BlankTemplate(base Record) Record {
	t := make(Record, len(base)+1)
	for k, v := range base {
		t[k] = v
	}
	t[BlankMarkerField] = true
	return t
}
