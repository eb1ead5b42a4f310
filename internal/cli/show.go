package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/oopdocs/oopdocs/internal/branding"
	"github.com/oopdocs/oopdocs/internal/outline"
	"github.com/spf13/cobra"
)

var (
	showRaw   bool
	showWidth int
)

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the markdown verbatim")
	showCmd.Flags().IntVar(&showWidth, "width", 80, "Word wrap width for rendered output")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Preview one outline file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd.OutOrStdout(), args[0], showRaw, showWidth)
	},
}

func runShow(w io.Writer, name string, raw bool, width int) error {
	set, err := outline.Default()
	if err != nil {
		return fmt.Errorf("loading outlines: %w", err)
	}

	spec, ok := set.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown outline file %q (run '%s list')", name, branding.CLIName())
	}

	if raw {
		_, err := io.WriteString(w, spec.Content)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(spec.Content)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err = io.WriteString(w, out)
	return err
}
