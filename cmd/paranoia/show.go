package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/paranoia/internal/config"
	"github.com/kingrea/paranoia/internal/orgafile"
	"github.com/kingrea/paranoia/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show [root_dir]",
	Short: "Browse the organization table interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}
		return doShow(root)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func doShow(root string) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	if !orgafile.Exists(root) {
		return fmt.Errorf("game not organized")
	}
	table, err := orgafile.Load(root)
	if err != nil {
		return err
	}

	ok, err := tui.Confirm("Show the full table? It reveals every secret.")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return tui.ShowTable(cfg.FieldSpecs(), table)
}
