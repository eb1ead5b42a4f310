package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oopdocs/oopdocs/internal/branding"
	"github.com/oopdocs/oopdocs/internal/outline"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion(cmd.OutOrStdout(), versionShort, versionJSON)
	},
}

func runVersion(w io.Writer, short, asJSON bool) error {
	if short {
		fmt.Fprintln(w, buildVersion)
		return nil
	}

	set, err := outline.Default()
	if err != nil {
		return fmt.Errorf("loading outlines: %w", err)
	}

	if asJSON {
		info := map[string]string{
			"version":        buildVersion,
			"commit":         buildCommit,
			"date":           buildDate,
			"outline":        set.Name,
			"outline_format": set.FormatVersion,
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	fmt.Fprintf(w, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
	fmt.Fprintf(w, "outline set %s (format %s)\n", set.Name, set.FormatVersion)
	return nil
}
