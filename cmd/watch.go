package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"jsmin/internal/builder"
	"jsmin/internal/ui"
	"jsmin/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for changes and re-minify",
	Long:  "Build the project, then re-minify each selected file whenever it changes",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintHeader(Version)

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

		ctx := cmd.Context()
		if _, err := b.Build(ctx); err != nil {
			ui.PrintError("Build failed: %v", err)
		}

		w, err := watcher.New(dir, b.Config.Out)
		if err != nil {
			ui.PrintError("Failed to start watcher: %v", err)
			os.Exit(1)
		}
		w.OnChange = func(rel string) { rebuild(b, rel) }
		w.OnError = func(err error) { ui.PrintWarning("Watcher error: %v", err) }

		if err := w.Start(ctx); err != nil {
			ui.PrintError("Failed to watch %s: %v", dir, err)
			os.Exit(1)
		}

		fmt.Fprintln(ui.Output)
		ui.PrintInfo("Watching for changes...")
		ui.PrintInfo("Press Ctrl+C to stop")

		<-ctx.Done()
		fmt.Fprintln(ui.Output)
		ui.PrintInfo("Stopped")
	},
}

func init() {
	watchCmd.Flags().BoolVar(&buildGzip, "gzip", false, "Also write .gz files (overrides the config)")
	rootCmd.AddCommand(watchCmd)
}

// rebuild re-minifies rel if the project config selects it
func rebuild(b *builder.Builder, rel string) {
	sources, err := b.Sources()
	if err != nil {
		ui.PrintError("Failed to expand includes: %v", err)
		return
	}

	rel = filepath.Clean(rel)
	for _, source := range sources {
		if source != rel {
			continue
		}
		result, err := b.BuildFile(source)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		ui.PrintSuccess("%s → %s (%s)", result.Source, result.Output, ui.Size(result.OutputSize))
		return
	}
}
