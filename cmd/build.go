package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"jsmin/internal/builder"
	"jsmin/internal/config"
	"jsmin/internal/ui"
)

var (
	buildGzip  bool
	buildQuiet bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Minify the project's JavaScript files",
	Long:  "Minify every file selected by jsmin.properties (or .jsmin.yaml) in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		if !buildQuiet {
			ui.PrintHeader(Version)
		}

		dir, err := os.Getwd()
		if err != nil {
			ui.PrintError("Failed to get current directory: %v", err)
			os.Exit(1)
		}

		b, err := newBuilder(cmd, dir)
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}
		b.Quiet = buildQuiet

		report, err := b.Build(cmd.Context())
		if err != nil {
			ui.PrintError("Build failed: %v", err)
			os.Exit(1)
		}

		if len(report.Files) == 0 {
			ui.PrintWarning("No JavaScript files matched %v", b.Config.Include)
			return
		}

		if !buildQuiet {
			fmt.Fprintln(ui.Output)
			fmt.Fprintln(ui.Output, ui.Divider())
			fmt.Fprintln(ui.Output)
			ui.PrintKeyValue("Files", fmt.Sprintf("%d", len(report.Files)))
			ui.PrintKeyValue("Input", ui.Size(report.InputSize()))
			ui.PrintKeyValue("Output", fmt.Sprintf("%s (%s)", ui.Size(report.OutputSize()), ui.Percent(report.Ratio())))
			fmt.Fprintln(ui.Output)
		}
		ui.PrintSuccess("Build complete!")
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildGzip, "gzip", false, "Also write .gz files (overrides the config)")
	buildCmd.Flags().BoolVar(&buildQuiet, "quiet", false, "Only print errors and the final status")
	rootCmd.AddCommand(buildCmd)
}

// newBuilder loads the project config in dir and applies command line overrides
func newBuilder(cmd *cobra.Command, dir string) (*builder.Builder, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Path == "" {
		ui.PrintInfo("No %s found, using defaults", config.PropertiesFile)
	}

	if f := cmd.Flags().Lookup("gzip"); f != nil && f.Changed {
		cfg.Gzip = buildGzip
	}
	return builder.New(dir, cfg), nil
}
