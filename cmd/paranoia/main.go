// cmd/paranoia/main.go
//
// CLI entry point. Commands:
//
//	paranoia organize [root_dir]   randomize and persist an organization
//	paranoia print [root_dir]      render printable cards from it
//	paranoia show [root_dir]       inspect the table interactively
//
// Each command takes the game directory as its only argument and
// defaults to the current directory.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)

var rootCmd = &cobra.Command{
	Use:           "paranoia",
	Short:         "Organize and print cards for a secret-role social game",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		fmt.Fprintln(os.Stderr, errorStyle.Render("Aborting!"))
		os.Exit(2)
	}
}

// resolveRoot turns the optional positional argument into an absolute
// game directory, defaulting to the working directory.
func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root dir %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("root dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root dir %s is not a directory", abs)
	}
	return abs, nil
}
