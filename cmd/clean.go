package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minifykit/internal/files"
	"minifykit/internal/project"
	"minifykit/internal/ui"
)

var (
	cleanExtensions []string
	cleanSuffix     string
)

var cleanCmd = &cobra.Command{
	Use:   "clean [dir]",
	Short: "Delete minified files from a project",
	Long: `Delete every file under dir whose name carries the minified suffix.

With --extensions only files with one of those extensions are removed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := projectDir(args)
		cfg := loadConfig(dir)

		if cmd.Flags().Changed("suffix") {
			cfg.Suffix = cleanSuffix
		}

		reg, err := cfg.Registry()
		if err != nil {
			ui.PrintError("Invalid language configuration: %v", err)
			os.Exit(1)
		}

		m := project.New(reg, files.NewProcessor(),
			project.WithQuiet(quiet),
			project.WithLogger(newLogger(cfg)),
		)

		deleted, err := m.Clean(dir, cfg.Suffix, cleanExtensions)
		if err != nil {
			ui.PrintError("Clean failed: %v", err)
			os.Exit(1)
		}

		fmt.Println()
		ui.PrintSuccess("Clean complete!")
		ui.PrintCount("Deleted", deleted)
		fmt.Println()
	},
}

func init() {
	cleanCmd.Flags().StringSliceVarP(&cleanExtensions, "extensions", "e", nil, "Only delete minified files with these extensions")
	cleanCmd.Flags().StringVarP(&cleanSuffix, "suffix", "s", project.DefaultSuffix, "Suffix that marks minified files")
}
