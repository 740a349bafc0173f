package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gridnav/cli"
	"github.com/grovetools/gridnav/config"
	"github.com/grovetools/gridnav/pkg/items"
	"github.com/grovetools/gridnav/tui/components/table"
	"github.com/grovetools/gridnav/tui/gridnav"
	"github.com/grovetools/gridnav/tui/theme"
)

// NewLayoutCmd creates the `layout` command.
func NewLayoutCmd() *cobra.Command {
	var flags cli.GridFlags

	cmd := &cobra.Command{
		Use:   "layout [items-file|dir]",
		Short: "Print the grid built from an item source",
		Long: `Lays the records of an item file (.json, .jsonl, .yaml, .yml, .toml) or the
entries of a directory out as a grid, padding with blank cells up to
--required-rows, and prints it as a table. With --json the rows are printed
as nested arrays of records.

Examples:
  # Three per row, at least four rows
  gridnav layout items.json --per-row 3 --required-rows 4

  # Mark the cell at linear index 5
  gridnav layout items.yaml -p 4 --mark 5

  # Borderless, for pasting into notes
  gridnav layout items.json --plain

  # Current directory without build output
  gridnav layout . -x bin -x '*.o' --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayoutE(cmd, args, &flags)
		},
	}

	cli.AddGridFlags(cmd.Flags(), &flags)
	cmd.Flags().Int("mark", -1, "Linear index of the cell to mark")
	cmd.Flags().Bool("plain", false, "Print the table without a border")

	return cmd
}

func runLayoutE(cmd *cobra.Command, args []string, flags *cli.GridFlags) error {
	cfg, err := loadGridConfig(cmd, flags)
	if err != nil {
		return err
	}

	source := sourceArg(args)
	records, err := items.Load(source, flags.Excludes)
	if err != nil {
		return err
	}

	perRow := cfg.Grid.PerRow
	if cfg.Grid.AutoColumns() {
		perRow = autoPerRow(terminalWidth(), cfg.Grid.CellWidth)
	}

	grid := gridnav.BuildGrid(records, perRow, cfg.Grid.RequiredRows,
		gridnav.BlankTemplate(cfg.Grid.BlankTemplate), cfg.Grid.IndexField, cfg.Grid.StartIndex)

	cli.GetLogger(cmd).Debugf("laid out %d items from %s as %d rows of %d", len(records), source, len(grid), perRow)

	out := cmd.OutOrStdout()
	if cli.GetOptions(cmd).JSONOutput {
		if grid == nil {
			grid = [][]gridnav.Record{}
		}
		data, err := json.MarshalIndent(grid, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	mark, _ := cmd.Flags().GetInt("mark")
	plain, _ := cmd.Flags().GetBool("plain")
	opts := table.RenderOptions{Borderless: plain}
	if cfg.Theme != "" {
		opts.Theme = theme.NewThemeWithName(cfg.Theme)
	}
	fmt.Fprintln(out, table.Render(grid, cfg.Grid.LabelField, mark, perRow, opts))
	return nil
}

// loadGridConfig loads the configuration and applies the grid flags on top.
func loadGridConfig(cmd *cobra.Command, flags *cli.GridFlags) (*config.Config, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	flags.Apply(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sourceArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
