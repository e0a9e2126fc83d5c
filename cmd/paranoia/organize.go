package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/kingrea/paranoia/internal/config"
	"github.com/kingrea/paranoia/internal/logbook"
	"github.com/kingrea/paranoia/internal/orgafile"
	"github.com/kingrea/paranoia/internal/organize"
	"github.com/kingrea/paranoia/internal/tui"
)

var (
	organizeForce      bool
	organizePrintTable bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize [root_dir]",
	Short: "Randomize the assignment and persist it in the game directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}
		return doOrganize(root, organizeForce, organizePrintTable)
	},
}

func init() {
	organizeCmd.Flags().BoolVarP(&organizeForce, "force", "f", false, "overwrite an existing organization")
	organizeCmd.Flags().BoolVar(&organizePrintTable, "print-table", false, "dump the full table after organizing (asks first)")
	rootCmd.AddCommand(organizeCmd)
}

// doOrganize is one complete organization run: load config, refuse to
// clobber an existing artifact unless forced, validate, generate with a
// fresh time-seeded source, optionally dump the table, persist.
func doOrganize(root string, force, printTable bool) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	if orgafile.Exists(root) && !force {
		return fmt.Errorf("game already organized, and --force not specified")
	}

	vetted, err := organize.ValidateAndLoad(root, cfg.FieldSpecs())
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	table, err := organize.Generate(vetted, rng)
	if err != nil {
		return err
	}

	if printTable {
		ok, err := tui.Confirm("Are you sure you want to print the table?")
		if err != nil {
			return err
		}
		if ok {
			fmt.Println(tui.RenderTable(cfg.FieldSpecs(), table))
		}
	}

	log := logbook.New(root)
	if err := orgafile.Save(root, table); err != nil {
		log.Error("organization write failed: %v", err)
		return err
	}
	if force {
		log.Warn("reorganized %d participants (forced overwrite)", len(table))
	} else {
		log.Info("organized %d participants", len(table))
	}
	return nil
}
