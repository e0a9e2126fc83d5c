package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/paranoia/internal/config"
	"github.com/kingrea/paranoia/internal/logbook"
	"github.com/kingrea/paranoia/internal/orgafile"
	"github.com/kingrea/paranoia/internal/render"
	"github.com/kingrea/paranoia/internal/tui"
)

var (
	printOnly   string
	printOutput string
)

var printCmd = &cobra.Command{
	Use:   "print [root_dir]",
	Short: "Render the organized game as printable fold cards",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}
		return doPrint(root, printOnly, printOutput)
	},
}

func init() {
	printCmd.Flags().StringVar(&printOnly, "only", "", "comma-separated serial numbers to print (default: all)")
	printCmd.Flags().StringVarP(&printOutput, "output", "o", render.DefaultOutputFile, "output PDF path")
	rootCmd.AddCommand(printCmd)
}

func doPrint(root, onlyArg, outPath string) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	if !orgafile.Exists(root) {
		ok, err := tui.Confirm("Game not organized. Organize now?")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("game not organized")
		}
		if err := doOrganize(root, false, false); err != nil {
			return err
		}
	}

	table, err := orgafile.Load(root)
	if err != nil {
		return err
	}

	only, err := parseOnly(onlyArg)
	if err != nil {
		return err
	}

	if err := render.Cards(table, cfg.FieldSpecs(), cfg.Config, only, outPath); err != nil {
		return err
	}
	logbook.New(root).Info("printed cards to %s", outPath)
	return nil
}

// parseOnly parses the --only flag into an ID set; empty means all.
func parseOnly(arg string) (map[int]bool, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}
	only := make(map[int]bool)
	for _, part := range strings.Split(arg, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid --only value %q: %w", part, err)
		}
		only[id] = true
	}
	return only, nil
}
