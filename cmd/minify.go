package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"jsmin/internal/jsmin"
	"jsmin/internal/ui"
)

var (
	minifyOutput string
	minifyQuotes string
)

var minifyCmd = &cobra.Command{
	Use:   "minify [files...]",
	Short: "Minify JavaScript files or standard input",
	Long: `Minify one or more JavaScript files and write the result to standard output
or to the file given with --output. With no files, or the file "-", the
source is read from standard input. Multiple files are joined with ";".`,
	Run: func(cmd *cobra.Command, args []string) {
		// Keep stdout clean for the minified code
		ui.Output = os.Stderr

		m := jsmin.New(jsmin.WithQuotes(minifyQuotes))

		var out io.Writer = os.Stdout
		var outFile *os.File
		if minifyOutput != "" && minifyOutput != "-" {
			f, err := os.Create(minifyOutput)
			if err != nil {
				ui.PrintError("Failed to create %s: %v", minifyOutput, err)
				os.Exit(1)
			}
			outFile = f
			out = f
		}

		err := minifyFiles(m, args, os.Stdin, out)
		if outFile != nil {
			if cerr := outFile.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}
	},
}

func init() {
	minifyCmd.Flags().StringVarP(&minifyOutput, "output", "o", "", "Write to this file instead of standard output")
	minifyCmd.Flags().StringVarP(&minifyQuotes, "quotes", "q", jsmin.DefaultQuotes, "Characters that delimit string literals")
	rootCmd.AddCommand(minifyCmd)
}

// minifyFiles minifies each named file (or stdin for "-") into out
func minifyFiles(m *jsmin.Minifier, names []string, stdin io.Reader, out io.Writer) error {
	if len(names) == 0 {
		names = []string{"-"}
	}

	for i, name := range names {
		if i > 0 {
			if _, err := io.WriteString(out, ";\n"); err != nil {
				return err
			}
		}
		if err := minifyFile(m, name, stdin, out); err != nil {
			return err
		}
	}
	return nil
}

func minifyFile(m *jsmin.Minifier, name string, stdin io.Reader, out io.Writer) error {
	if name == "-" {
		if err := m.Minify(stdin, out); err != nil {
			return fmt.Errorf("failed to minify standard input: %w", err)
		}
		return nil
	}

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	if err := m.Minify(f, out); err != nil {
		return fmt.Errorf("failed to minify %s: %w", name, err)
	}
	return nil
}
