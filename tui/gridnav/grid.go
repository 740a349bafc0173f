package gridnav

// Pad returns a copy of items extended to at least target elements. Each
// appended element is produced by blank, called with consecutive indexes
// starting at startIndex.
func Pad[T any](items []T, target, startIndex int, blank func(index int) T) []T {
	out := make([]T, len(items), max(len(items), target))
	copy(out, items)

	current := startIndex
	for len(out) < target {
		out = append(out, blank(current))
		current++
	}
	return out
}

// Partition splits items into row-major rows of perRow elements. The last row
// is shorter when len(items) is not a multiple of perRow. A non-positive
// perRow yields no rows.
func Partition[T any](items []T, perRow int) [][]T {
	if perRow <= 0 {
		return nil
	}

	rows := make([][]T, 0, (len(items)+perRow-1)/perRow)
	for i := 0; i < len(items); i += perRow {
		end := min(i+perRow, len(items))
		row := make([]T, end-i)
		copy(row, items[i:end])
		rows = append(rows, row)
	}
	return rows
}

// BuildGridFunc pads items up to perRow*requiredRows using blank and then
// partitions them into rows of perRow.
func BuildGridFunc[T any](items []T, perRow, requiredRows, startIndex int, blank func(index int) T) [][]T {
	return Partition(Pad(items, perRow*requiredRows, startIndex, blank), perRow)
}

// BuildGrid lays items out as rows of perRow records, padding with blank
// cells until there are at least requiredRows full rows. Every pad cell is
// blankTemplate merged with {indexField: n}, where n counts up from
// startIndex. items is not modified.
//
// When len(items) already exceeds perRow*requiredRows no padding happens and
// the last row keeps its natural, possibly shorter, length.
func BuildGrid(items []Record, perRow, requiredRows int, blankTemplate Record, indexField string, startIndex int) [][]Record {
	return BuildGridFunc(items, perRow, requiredRows, startIndex, func(index int) Record {
		return MakeBlankCell(blankTemplate, indexField, index)
	})
}

// RowCount is the number of rows needed for size cells at perRow per row.
func RowCount(size, perRow int) int {
	if perRow <= 0 || size <= 0 {
		return 0
	}
	return (size + perRow - 1) / perRow
}
