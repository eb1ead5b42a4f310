package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/oopdocs/oopdocs/internal/outline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the outline files in scaffold order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout())
	},
}

var listHeader = table.Row{
	"#",
	"File",
	"Title",
	"Sections",
}

func runList(w io.Writer) error {
	set, err := outline.Default()
	if err != nil {
		return fmt.Errorf("loading outlines: %w", err)
	}

	listTable := table.NewWriter()
	listTable.SetOutputMirror(w)
	listTable.AppendHeader(listHeader)
	for i, f := range set.Files {
		listTable.AppendRow(table.Row{
			i + 1,
			f.Name,
			f.Title,
			sectionCount(f.Content),
		})
	}
	listTable.Render()
	return nil
}

// sectionCount counts the headings below the document title.
func sectionCount(content string) int {
	n := 0
	for _, h := range outline.Headings(content) {
		if h.Level > 1 {
			n++
		}
	}
	return n
}
