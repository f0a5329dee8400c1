package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"minifykit/internal/config"
	"minifykit/internal/logger"
	"minifykit/internal/ui"
)

// Version is set by ldflags during build
var Version = "dev"

var (
	quiet    bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "minifykit",
	Short: "Regex-based source code minifier",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Long = ui.Divider() + "\n" + ui.Banner() + "\n" + ui.VersionLine(Version) + "\n\n" + ui.Divider() + "\n\n  Minify Python, JavaScript, CSS and HTML sources across a project"
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors and the final summary")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(languagesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("minifykit %s\n", Version)
	},
}

// projectDir resolves the optional directory argument and exits when it
// is not an existing directory
func projectDir(args []string) string {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	info, err := os.Stat(dir)
	if err != nil {
		ui.PrintError("Directory not found: %s", dir)
		os.Exit(1)
	}
	if !info.IsDir() {
		ui.PrintError("Not a directory: %s", dir)
		os.Exit(1)
	}
	return dir
}

// loadConfig reads the project configuration, exiting on a malformed file
func loadConfig(dir string) *config.Config {
	cfg, err := config.Load(dir)
	if err != nil {
		ui.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg
}

// newLogger returns the diagnostic logger for one command invocation; the
// run attribute ties together the records of a single run
func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.LogLevel, os.Stderr).With(slog.String("run", uuid.NewString()))
}
