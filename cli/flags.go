package cli

import (
	"github.com/spf13/pflag"

	"github.com/grovetools/gridnav/config"
)

// GridFlags holds the layout flags shared by the commands that build a grid.
type GridFlags struct {
	PerRow       int
	RequiredRows int
	StartIndex   int
	IndexField   string
	LabelField   string
	Excludes     []string
}

// AddGridFlags registers the layout flags on fs.
func AddGridFlags(fs *pflag.FlagSet, f *GridFlags) {
	fs.IntVarP(&f.PerRow, "per-row", "p", 0, "Cells per row (0 uses the config, then the terminal width)")
	fs.IntVarP(&f.RequiredRows, "required-rows", "r", 0, "Minimum rows; missing cells are padded with blanks")
	fs.IntVar(&f.StartIndex, "start-index", 0, "First index stamped on blank cells")
	fs.StringVar(&f.IndexField, "index-field", "", "Record field that receives the blank cell index")
	fs.StringVar(&f.LabelField, "label-field", "", "Record field shown as the cell label")
	fs.StringSliceVarP(&f.Excludes, "exclude", "x", nil, "Patterns to skip when listing a directory (dockerignore syntax)")
}

// Apply copies every flag that was set on fs into the grid section of cfg.
func (f *GridFlags) Apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("per-row") {
		cfg.Grid.PerRow = f.PerRow
	}
	if fs.Changed("required-rows") {
		cfg.Grid.RequiredRows = f.RequiredRows
	}
	if fs.Changed("start-index") {
		cfg.Grid.StartIndex = f.StartIndex
	}
	if fs.Changed("index-field") {
		cfg.Grid.IndexField = f.IndexField
	}
	if fs.Changed("label-field") {
		cfg.Grid.LabelField = f.LabelField
	}
}
