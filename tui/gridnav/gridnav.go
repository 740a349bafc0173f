// Package gridnav contains the navigation math and focus rules for a grid of
// cells rendered from a flat item list.
//
// The caller owns the current (row, col). On every arrow key it calls
// ComputeMove, converts the result with LinearIndex, then hands the index to
// FocusCell and SetFocusMarker. Nothing in this package validates its numeric
// input: callers are expected to pass perRow > 0 and in-range positions.
package gridnav
