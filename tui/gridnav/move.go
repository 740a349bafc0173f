package gridnav

import "strings"

// KeyCode names a physical key the way browser keyboard events do.
type KeyCode string

const (
	ArrowUp    KeyCode = "ArrowUp"
	ArrowDown  KeyCode = "ArrowDown"
	ArrowLeft  KeyCode = "ArrowLeft"
	ArrowRight KeyCode = "ArrowRight"
)

// IsArrow reports whether c is one of the four arrow keys.
func (c KeyCode) IsArrow() bool {
	switch c {
	case ArrowUp, ArrowDown, ArrowLeft, ArrowRight:
		return true
	}
	return false
}

// ParseKeyCode accepts either the event code ("ArrowLeft") or the terminal
// key name ("left") and returns the matching KeyCode. Unknown names come back
// unchanged so that ComputeMove treats them as a no-op.
func ParseKeyCode(s string) KeyCode {
	switch strings.ToLower(s) {
	case "up", "arrowup":
		return ArrowUp
	case "down", "arrowdown":
		return ArrowDown
	case "left", "arrowleft":
		return ArrowLeft
	case "right", "arrowright":
		return ArrowRight
	}
	return KeyCode(s)
}

// Position is a cell coordinate inside the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MaxRow is the last row index for dataSize cells at perRow per row.
// It is -1 for an empty grid.
func MaxRow(dataSize, perRow int) int {
	return RowCount(dataSize, perRow) - 1
}

// RowWidth is the number of real cells in row. Only the last row can be
// short; it holds dataSize%perRow cells, or a full perRow when that is zero.
func RowWidth(row, dataSize, perRow int) int {
	if perRow <= 0 || dataSize <= 0 {
		return 0
	}
	if row == MaxRow(dataSize, perRow) {
		if rem := dataSize % perRow; rem != 0 {
			return rem
		}
	}
	return perRow
}

// ComputeMove returns the position reached from (row, col) by pressing code.
//
// Up and Down clamp the row to [0, maxRow]; Left clamps the column at 0; Right
// clamps the column to the width of the current row, which is shorter on a
// ragged last row. Up and Down leave col alone even when the destination row
// is shorter, so a caller moving onto the last row may get a column past its
// end and has to deal with that itself.
//
// Keys other than the arrows, an empty grid and a non-positive perRow all
// return the input position unchanged.
func ComputeMove(code KeyCode, row, col, dataSize, perRow int) Position {
	if !code.IsArrow() || dataSize <= 0 || perRow <= 0 {
		return Position{Row: row, Col: col}
	}

	maxRow := MaxRow(dataSize, perRow)

	switch code {
	case ArrowUp:
		row = max(0, row-1)
	case ArrowDown:
		row = min(maxRow, row+1)
	case ArrowLeft:
		col = max(0, col-1)
	case ArrowRight:
		maxCol := RowWidth(row, dataSize, perRow) - 1
		col = min(maxCol, col+1)
	}

	return Position{Row: row, Col: col}
}

// LinearIndex maps (row, col) back to an index into the flat item list.
func LinearIndex(row, col, perRow int) int {
	return row*perRow + col
}

// Index is LinearIndex for a Position.
func (p Position) Index(perRow int) int {
	return LinearIndex(p.Row, p.Col, perRow)
}
