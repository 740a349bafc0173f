package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/gridnav/cli"
	"github.com/grovetools/gridnav/errors"
	"github.com/grovetools/gridnav/pkg/items"
	"github.com/grovetools/gridnav/state"
	"github.com/grovetools/gridnav/tui"
	"github.com/grovetools/gridnav/tui/components/grid"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// NewRunCmd creates the `run` command.
func NewRunCmd() *cobra.Command {
	var flags cli.GridFlags

	cmd := &cobra.Command{
		Use:   "run [items-file|dir]",
		Short: "Navigate an item source interactively",
		Long: `Opens an interactive grid over the records of an item file or the entries
of a directory. Arrow keys move the focus, enter prints the focused record
as JSON and exits (the entry's path when browsing a directory, unless
--json is given), ? shows every binding. With --remember the cursor
position per source is kept in .gridnav/state.yml and restored on the next
run.

Examples:
  # Browse the current directory
  gridnav run

  # Reload whenever items.yaml changes
  gridnav run items.yaml --watch

  # Reopen at the cell where the last session ended
  gridnav run items.yaml --remember

  # Grow the grid as lines are appended to a JSON Lines feed
  gridnav run events.jsonl --follow --per-row 4
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunE(cmd, args, &flags)
		},
	}

	cli.AddGridFlags(cmd.Flags(), &flags)
	cmd.Flags().BoolP("watch", "w", false, "Reload the items when the source changes")
	cmd.Flags().BoolP("follow", "f", false, "Tail a JSON Lines file and add records as they arrive")
	cmd.Flags().String("keys", "", "Keybinding preset: arrows, vim")
	cmd.Flags().Bool("remember", false, "Restore the last cursor position for this source and save it on exit")
	cmd.MarkFlagsMutuallyExclusive("watch", "follow")

	return cmd
}

func runRunE(cmd *cobra.Command, args []string, flags *cli.GridFlags) error {
	logger := cli.GetLogger(cmd)

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New(errors.ErrCodeNotATerminal, "gridnav run needs an interactive terminal")
	}

	cfg, err := loadGridConfig(cmd, flags)
	if err != nil {
		return err
	}
	if preset, _ := cmd.Flags().GetString("keys"); preset != "" {
		cfg.Keybindings.Preset = preset
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	source := sourceArg(args)
	watch, _ := cmd.Flags().GetBool("watch")
	follow, _ := cmd.Flags().GetBool("follow")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var (
		records []gridnav.Record
		updates <-chan items.Update
	)
	switch {
	case follow:
		follower, err := items.NewFollower(source)
		if err != nil {
			return err
		}
		defer follower.Stop()
		go follower.Start(ctx)
		updates = follower.Updates()

	case watch:
		if records, err = items.Load(source, flags.Excludes); err != nil {
			return err
		}
		watcher, err := items.NewWatcher(source, flags.Excludes, items.DefaultDebounce)
		if err != nil {
			return err
		}
		go watcher.Start(ctx)
		updates = watcher.Updates()

	default:
		if records, err = items.Load(source, flags.Excludes); err != nil {
			return err
		}
	}

	logger.WithField("source", source).Debugf("starting grid with %d items", len(records))

	tui.InitializeTUI()

	opts := grid.OptionsFromConfig(cfg)
	opts.Width = terminalWidth()
	opts.Title = source

	g := grid.New(records, opts)
	if !follow {
		g.ItemsLoader = func() ([]gridnav.Record, error) {
			return items.Load(source, flags.Excludes)
		}
	}

	live := newLiveModel(g, updates)

	remember, _ := cmd.Flags().GetBool("remember")
	var store *state.Store
	if remember {
		if store, err = state.DefaultStore(); err != nil {
			logger.WithError(err).Warn("position state disabled")
		} else if pos, ok, err := store.Position(source); err != nil {
			logger.WithError(err).Warn("could not read position state")
		} else if ok {
			live = live.restorePosition(pos)
		}
	}

	final, err := tea.NewProgram(live, tea.WithAltScreen()).Run()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "grid program failed")
	}

	last := final.(liveModel).grid
	if store != nil {
		if err := store.SetPosition(source, last.Position()); err != nil {
			logger.WithError(err).Warn("could not save position state")
		}
	}

	selected := last.Selected()
	if selected == nil {
		return nil
	}
	out, err := selectionOutput(selected, cli.GetOptions(cmd).JSONOutput)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// selectionOutput formats the chosen record: the path for a directory
// entry, JSON otherwise or when asJSON is set.
func selectionOutput(rec gridnav.Record, asJSON bool) (string, error) {
	if !asJSON {
		if e, ok := items.EntryOf(rec); ok {
			return e.Path, nil
		}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
