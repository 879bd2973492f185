package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	// Colors
	Primary   = lipgloss.Color("#F7DF1E") // JavaScript yellow
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))
)

// Output receives all console messages. Commands that write minified
// code to stdout point it at stderr.
var Output io.Writer = os.Stdout

// Banner returns the jsmin banner
func Banner() string {
	banner := `
   █ █▀▀ █▀▄▀█ ▀█▀ █▄ █
 ▄ █ ▀▀█ █ ▀ █  █  █ ▀█
 ▀▀  ▀▀▀ ▀   ▀ ▀▀▀ ▀  ▀`
	return TitleStyle.Render(banner)
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	fmt.Fprintln(Output, SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	fmt.Fprintln(Output, InfoStyle.Render("• "+fmt.Sprintf(format, args...)))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(Output, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintln(Output, WarningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	fmt.Fprintf(Output, "  %s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// Divider returns a divider line
func Divider() string {
	return MutedStyle.Render("─────────────────────────────────────────")
}

// Size formats a byte count for display
func Size(n int64) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	return humanize.Bytes(uint64(n))
}

// Percent formats a ratio as a percentage
func Percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// PrintHeader prints the standard header
func PrintHeader(version string) {
	fmt.Fprintln(Output)
	fmt.Fprintln(Output, Divider())
	fmt.Fprintln(Output, Banner())
	fmt.Fprintln(Output, ValueStyle.Render(" Version: "+version))
	fmt.Fprintln(Output)
	fmt.Fprintln(Output, Divider())
	fmt.Fprintln(Output)
}
