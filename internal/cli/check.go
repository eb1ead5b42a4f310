package cli

import (
	"fmt"
	"io"

	"github.com/oopdocs/oopdocs/internal/outline"
	"github.com/oopdocs/oopdocs/internal/platform"
	"github.com/oopdocs/oopdocs/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which outline files are missing",
	Long: `Check the target directory without writing anything. Exits non-zero when
at least one outline file is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), resolveDir())
	},
}

func runCheck(w io.Writer, dir string) error {
	set, err := outline.Default()
	if err != nil {
		return fmt.Errorf("loading outlines: %w", err)
	}

	if err := platform.CheckDir(dir); err != nil {
		return fmt.Errorf("target directory %s is unusable: %w", dir, err)
	}

	result, err := scaffold.Run(w, dir, set.Files, scaffold.Options{DryRun: true})
	if err != nil {
		return err
	}

	if missing := result.Count(scaffold.Planned); missing > 0 {
		return fmt.Errorf("%d file(s) missing", missing)
	}
	fmt.Fprintf(w, "All %d files present.\n", len(set.Files))
	return nil
}
