package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/gridnav/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	maxHelpWidth = 72
	minHelpWidth = 40
)

// helpWidth returns the terminal width clamped to [minHelpWidth, maxHelpWidth].
func helpWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return maxHelpWidth
	}
	return min(max(width, minHelpWidth), maxHelpWidth)
}

// SetStyledHelp installs the styled help on one command.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

// ApplyStyledHelpRecursive installs the styled help on cmd and every
// subcommand. Call it after all subcommands are added.
func ApplyStyledHelpRecursive(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
	// errors are reported by ErrorHandler; no usage dump
	cmd.SetUsageFunc(func(*cobra.Command) error { return nil })
	for _, sub := range cmd.Commands() {
		ApplyStyledHelpRecursive(sub)
	}
}

func styledHelpFunc(cmd *cobra.Command, _ []string) {
	newHelpPrinter(cmd.OutOrStdout(), helpWidth()-2).print(cmd)
}

// helpPrinter renders a command's help in sections.
type helpPrinter struct {
	w     io.Writer
	width int

	title   lipgloss.Style
	section lipgloss.Style
	name    lipgloss.Style
	flag    lipgloss.Style
	sub     lipgloss.Style
	short   lipgloss.Style
	muted   lipgloss.Style
}

func newHelpPrinter(w io.Writer, width int) *helpPrinter {
	t := theme.DefaultTheme
	return &helpPrinter{
		w:       w,
		width:   width,
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Orange),
		section: lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange),
		name:    lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Cyan),
		flag:    lipgloss.NewStyle().Foreground(t.Colors.Violet),
		sub:     lipgloss.NewStyle().Foreground(t.Colors.Cyan),
		short:   lipgloss.NewStyle().Italic(true),
		muted:   t.Muted,
	}
}

func (p *helpPrinter) println(s string) {
	fmt.Fprintln(p.w, " "+s)
}

func (p *helpPrinter) heading(s string) {
	fmt.Fprintln(p.w)
	p.println(p.section.Render(s))
}

func (p *helpPrinter) print(cmd *cobra.Command) {
	p.println(p.title.Render(strings.ToUpper(cmd.CommandPath())))

	description, examples := parseDescription(cmd.Long)
	if cmd.Short != "" {
		for _, line := range strings.Split(wrapText(cmd.Short, p.width), "\n") {
			p.println(p.short.Render(line))
		}
	}
	if description != "" && description != cmd.Short {
		fmt.Fprintln(p.w)
		for _, line := range strings.Split(wrapText(description, p.width), "\n") {
			p.println(line)
		}
	}

	p.usage(cmd)
	p.commands(cmd)
	p.flags(cmd)

	if cmd.Example != "" {
		examples = cmd.Example
	}
	if examples != "" {
		p.heading("EXAMPLES")
		p.examples(examples, strings.Fields(cmd.CommandPath())[0])
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(p.w, "\n Use \"%s [command] --help\" for more information.\n", cmd.CommandPath())
	}
}

func (p *helpPrinter) usage(cmd *cobra.Command) {
	if !cmd.Runnable() && !cmd.HasSubCommands() {
		return
	}
	p.heading("USAGE")
	if cmd.Runnable() {
		p.println(cmd.UseLine())
	}
	if cmd.HasSubCommands() {
		p.println(cmd.CommandPath() + " [command]")
	}
}

func (p *helpPrinter) commands(cmd *cobra.Command) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	width := 0
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			width = max(width, len(sub.Name()))
		}
	}

	p.heading("COMMANDS")
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		pad := strings.Repeat(" ", width-len(sub.Name()))
		p.println(p.name.Render(sub.Name()) + pad + "  " + sub.Short)
	}
}

// flags lists the local flags: compact for parent commands, one per line
// with defaults and choices for leaf commands.
func (p *helpPrinter) flags(cmd *cobra.Command) {
	var visible []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visible = append(visible, f)
		}
	})
	if len(visible) == 0 {
		return
	}

	if cmd.HasAvailableSubCommands() {
		names := make([]string, 0, len(visible))
		for _, f := range visible {
			names = append(names, strings.TrimSpace(flagName(f)))
		}
		fmt.Fprintln(p.w)
		p.println(p.muted.Render("Flags: " + strings.Join(names, ", ")))
		return
	}

	width := 0
	for _, f := range visible {
		width = max(width, len(flagName(f)))
	}

	p.heading("FLAGS")
	for _, f := range visible {
		name := flagName(f)
		usage, choices := parseChoices(f.Usage)
		if showDefault(f) {
			usage += p.muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
		}
		p.println(p.flag.Render(name) + strings.Repeat(" ", width-len(name)) + "  " + usage)
		for _, c := range choices {
			p.println(strings.Repeat(" ", width+2) + p.muted.Render("• "+c))
		}
	}
}

func (p *helpPrinter) examples(examples, root string) {
	for _, line := range strings.Split(examples, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			fmt.Fprintln(p.w)
		case strings.HasPrefix(trimmed, "#"):
			p.println(p.muted.Render(trimmed))
		default:
			p.println("  " + p.styleCommandLine(trimmed, root))
		}
	}
}

// styleCommandLine colors the root command, the subcommand and the flags of
// an example line.
func (p *helpPrinter) styleCommandLine(line, root string) string {
	parts := strings.Fields(line)
	for i, part := range parts {
		switch {
		case i == 0 && part == root:
			parts[i] = p.name.Render(part)
		case strings.HasPrefix(part, "-"):
			parts[i] = p.flag.Render(part)
		case i == 1:
			parts[i] = p.sub.Render(part)
		}
	}
	return strings.Join(parts, " ")
}

func flagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}

func showDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "false", "[]", "0":
		return false
	}
	return true
}

// wrapText wraps each paragraph of text at width, keeping existing line
// breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxHelpWidth
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			out = append(out, paragraph)
			continue
		}
		line := ""
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// parseDescription splits a Long text at its "Examples:" line.
func parseDescription(long string) (description, examples string) {
	for _, marker := range []string{"\nExamples:\n", "\nExample:\n"} {
		if idx := strings.Index(long, marker); idx != -1 {
			return strings.TrimSpace(long[:idx]), strings.TrimSpace(long[idx+len(marker):])
		}
	}
	return strings.TrimSpace(long), ""
}

// parseChoices splits a usage string of the form "Label: a, b, or c" into
// the label and its choices. Usage without a comma separated list after the
// colon is returned unchanged.
func parseChoices(usage string) (description string, choices []string) {
	colon := strings.Index(usage, ": ")
	if colon == -1 {
		return usage, nil
	}

	list := usage[colon+2:]
	suffix := ""
	if paren := strings.Index(list, " ("); paren != -1 {
		list, suffix = list[:paren], list[paren:]
	}
	if !strings.Contains(list, ", ") {
		return usage, nil
	}

	for _, part := range strings.Split(list, ", ") {
		choices = append(choices, strings.TrimSpace(strings.TrimPrefix(part, "or ")))
	}
	return usage[:colon+1] + suffix, choices
}
