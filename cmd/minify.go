package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minifykit/internal/files"
	"minifykit/internal/project"
	"minifykit/internal/report"
	"minifykit/internal/ui"
)

var (
	minifyLanguages  []string
	minifyExtensions []string
	minifySuffix     string
	minifySkip       []string
	minifyExclude    []string
	minifyReport     bool
	minifyAlgorithms []string
)

var minifyCmd = &cobra.Command{
	Use:   "minify [dir]",
	Short: "Minify every supported file in a project",
	Long: `Minify every supported file under dir (default: the current directory).

Each file is written next to its source with the suffix inserted before
the extension, so app.js becomes app.min.js. Files that already carry the
suffix are skipped. Settings are read from minifykit.properties and .env
in dir; flags override both.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := projectDir(args)
		cfg := loadConfig(dir)

		flags := cmd.Flags()
		if flags.Changed("languages") {
			cfg.Languages = minifyLanguages
		}
		if flags.Changed("extensions") {
			cfg.Extensions = minifyExtensions
		}
		if flags.Changed("suffix") {
			cfg.Suffix = minifySuffix
		}
		if flags.Changed("skip") {
			cfg.Skip = minifySkip
		}
		if flags.Changed("exclude") {
			cfg.Exclude = append(cfg.Exclude, minifyExclude...)
		}
		if flags.Changed("report") {
			cfg.Report = minifyReport
		}
		if flags.Changed("report-algorithms") {
			cfg.Report = true
			cfg.ReportAlgorithms = minifyAlgorithms
		}

		reg, err := cfg.Registry()
		if err != nil {
			ui.PrintError("Invalid language configuration: %v", err)
			os.Exit(1)
		}

		opts := []project.Option{
			project.WithSkip(cfg.Skip...),
			project.WithExclude(cfg.Exclude...),
			project.WithCacheSize(cfg.CacheSize),
			project.WithQuiet(quiet),
			project.WithLogger(newLogger(cfg)),
		}

		var summary *report.Summary
		if cfg.Report {
			algos, err := cfg.Algorithms()
			if err != nil {
				ui.PrintError("Invalid report configuration: %v", err)
				os.Exit(1)
			}
			summary = report.NewSummary(algos...)
			opts = append(opts, project.WithReport(summary))
		}

		if !quiet {
			ui.PrintHeader(Version)
		}

		m := project.New(reg, files.NewProcessor(), opts...)

		processed, skipped, err := m.MinifyProject(dir, project.Options{
			Languages:  cfg.Languages,
			Extensions: cfg.Extensions,
			Suffix:     cfg.Suffix,
		})
		if err != nil {
			ui.PrintError("Minification failed: %v", err)
			os.Exit(1)
		}

		fmt.Println()
		ui.PrintSuccess("Minification complete!")
		ui.PrintCount("Processed", processed)
		ui.PrintCount("Skipped", skipped)
		fmt.Println()

		if summary != nil {
			printReport(summary)
		}
	},
}

// printReport shows the size totals of a run, per file unless quiet
func printReport(s *report.Summary) {
	fmt.Println(ui.Header("Size report"))
	fmt.Println()
	if !quiet {
		for _, e := range s.Entries() {
			ui.PrintKeyValue(e.Path, fmt.Sprintf("%s → %s (%.1f%%)",
				report.FormatBytes(e.Original), report.FormatBytes(e.Minified), e.Saved()))
		}
		fmt.Println()
	}

	total := s.Total()
	ui.PrintKeyValue("Original", report.FormatBytes(total.Original))
	ui.PrintKeyValue("Minified", fmt.Sprintf("%s (%.1f%% saved)", report.FormatBytes(total.Minified), total.Saved()))
	for _, algo := range s.Algorithms() {
		ui.PrintKeyValue(string(algo), report.FormatBytes(total.Compressed[algo]))
	}
	fmt.Println()
}

func init() {
	minifyCmd.Flags().StringSliceVarP(&minifyLanguages, "languages", "l", nil, "Languages to process (default: all)")
	minifyCmd.Flags().StringSliceVarP(&minifyExtensions, "extensions", "e", nil, "Additional file extensions to process")
	minifyCmd.Flags().StringVarP(&minifySuffix, "suffix", "s", project.DefaultSuffix, "Suffix inserted before the extension of minified files")
	minifyCmd.Flags().StringSliceVar(&minifySkip, "skip", project.DefaultSkip, "Directory names to skip")
	minifyCmd.Flags().StringSliceVarP(&minifyExclude, "exclude", "x", nil, "Glob patterns of files to ignore (supports **)")
	minifyCmd.Flags().BoolVarP(&minifyReport, "report", "r", false, "Print original, minified and compressed sizes")
	minifyCmd.Flags().StringSliceVar(&minifyAlgorithms, "report-algorithms", nil, "Codecs for the size report: gzip, zstd, brotli, lz4, snappy (implies --report)")
}
