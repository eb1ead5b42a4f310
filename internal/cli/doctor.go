package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oopdocs/oopdocs/internal/outline"
	"github.com/oopdocs/oopdocs/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the outline set and the target directory",
	Long: `Run diagnostic checks: the embedded outline set is valid, the target
directory exists and is writable, and which outline files are present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.OutOrStdout(), resolveDir())
	},
}

func runDoctor(w io.Writer, dir string) error {
	failures := 0

	fmt.Fprintln(w, "Outline set:")
	set, err := outline.Default()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("embedded outline set is invalid: %w", err)
	}
	fmt.Fprintf(w, "  [ OK ] %s v%s: %d files\n", set.Name, set.FormatVersion, len(set.Files))

	fmt.Fprintf(w, "Target directory %s:\n", dir)
	if err := platform.CheckDir(dir); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("target directory %s is unusable: %w", dir, err)
	}
	fmt.Fprintln(w, "  [ OK ] exists")

	if err := platform.CheckWritable(dir); err != nil {
		fmt.Fprintf(w, "  [FAIL] not writable: %v\n", err)
		failures++
	} else {
		fmt.Fprintln(w, "  [ OK ] writable")
	}

	fmt.Fprintln(w, "Outline files:")
	missing := 0
	for _, f := range set.Files {
		if _, err := os.Lstat(filepath.Join(dir, f.Name)); err != nil {
			fmt.Fprintf(w, "  [MISS] %s missing\n", f.Name)
			missing++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s present\n", f.Name)
	}
	if missing > 0 {
		fmt.Fprintf(w, "  [INFO] %d file(s) missing; run the root command to create them\n", missing)
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	return nil
}
