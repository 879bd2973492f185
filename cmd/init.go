package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"jsmin/internal/config"
	"jsmin/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a jsmin.properties file",
	Long:  "Write a jsmin.properties file with the default settings into the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := os.Getwd()
		if err != nil {
			ui.PrintError("Failed to get current directory: %v", err)
			os.Exit(1)
		}

		path, err := config.WriteDefault(dir)
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		ui.PrintSuccess("Created %s", path)
		ui.PrintInfo("Run 'jsmin build' to minify the project")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
