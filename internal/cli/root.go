package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/oopdocs/oopdocs/internal/branding"
	"github.com/oopdocs/oopdocs/internal/config"
	"github.com/oopdocs/oopdocs/internal/outline"
	"github.com/oopdocs/oopdocs/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	targetDir string
	dryRun    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&targetDir, config.KeyDir, config.DefaultDir,
		"Directory to scaffold into (must already exist)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be created without writing")
	_ = viper.BindPFlag(config.KeyDir, rootCmd.PersistentFlags().Lookup(config.KeyDir))
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the markdown outlines of the object-oriented
programming tutorial series in the target directory. Files that already exist are
left untouched; each file is reported as created or already existing.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd.OutOrStdout(), resolveDir(), scaffold.Options{DryRun: dryRun})
	},
}

// Execute runs the root command with build info injected via ldflags.
// The error, if any, is printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// resolveDir returns the target directory: --dir, then OOPDOCS_DIR, then the
// config file, then the working directory.
func resolveDir() string {
	if dir := config.Get(config.KeyDir); dir != "" {
		return dir
	}
	return config.DefaultDir
}

func runScaffold(w io.Writer, dir string, opts scaffold.Options) error {
	set, err := outline.Default()
	if err != nil {
		return fmt.Errorf("loading outlines: %w", err)
	}
	if _, err := scaffold.Run(w, dir, set.Files, opts); err != nil {
		return err
	}
	return nil
}
