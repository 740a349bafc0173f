package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gridnav/cli"
	"github.com/grovetools/gridnav/errors"
	"github.com/grovetools/gridnav/tui/gridnav"
)

type moveResult struct {
	Key      string           `json:"key"`
	From     gridnav.Position `json:"from"`
	To       gridnav.Position `json:"to"`
	Index    int              `json:"index"`
	MaxRow   int              `json:"max_row"`
	RowWidth int              `json:"row_width"`
}

// NewMoveCmd creates the `move` command.
func NewMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Compute the cell reached by one arrow key press",
		Long: `Applies a single key press to a position in a grid of --size items laid out
--per-row cells per row, and prints the new position and its linear index.
Keys other than the four arrows leave the position unchanged.

Examples:
  # Right on the short last row stays put
  gridnav move --key ArrowRight --row 2 --col 0 --size 7 --per-row 3

  # Machine readable output
  gridnav move --key down --size 10 --per-row 4 --json
`,
		Args: cobra.NoArgs,
		RunE: runMoveE,
	}

	cmd.Flags().StringP("key", "k", "", "Key code: ArrowUp, ArrowDown, ArrowLeft, ArrowRight (or up, down, left, right)")
	cmd.Flags().Int("row", 0, "Current row")
	cmd.Flags().Int("col", 0, "Current column")
	cmd.Flags().IntP("size", "n", 0, "Number of real items in the grid")
	cmd.Flags().IntP("per-row", "p", 0, "Cells per row")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func runMoveE(cmd *cobra.Command, args []string) error {
	keyName, _ := cmd.Flags().GetString("key")
	row, _ := cmd.Flags().GetInt("row")
	col, _ := cmd.Flags().GetInt("col")
	size, _ := cmd.Flags().GetInt("size")
	perRow, _ := cmd.Flags().GetInt("per-row")

	if perRow <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--per-row must be positive").
			WithDetail("per_row", perRow)
	}
	if row < 0 || col < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--row and --col must not be negative")
	}

	code := gridnav.ParseKeyCode(keyName)
	to := gridnav.ComputeMove(code, row, col, size, perRow)

	cli.GetLogger(cmd).WithField("key", string(code)).Debugf("move %v -> %v", gridnav.Position{Row: row, Col: col}, to)

	result := moveResult{
		Key:      string(code),
		From:     gridnav.Position{Row: row, Col: col},
		To:       to,
		Index:    gridnav.LinearIndex(to.Row, to.Col, perRow),
		MaxRow:   gridnav.MaxRow(size, perRow),
		RowWidth: gridnav.RowWidth(to.Row, size, perRow),
	}

	out := cmd.OutOrStdout()
	if cli.GetOptions(cmd).JSONOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "row %d col %d index %d\n", result.To.Row, result.To.Col, result.Index)
	if result.To.Col >= result.RowWidth && result.RowWidth > 0 {
		fmt.Fprintf(out, "note: column %d is past the end of row %d (%d cells)\n", result.To.Col, result.To.Row, result.RowWidth)
	}
	return nil
}
