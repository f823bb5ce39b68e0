package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link wln_file",
	Short: "parse a netlist file and resolve cell types / module ordering.",
	Long:  "Parse a netlist file, resolve each cell's operator or hierarchical type and reorder modules so callees precede callers.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "link"))
		setupLogging(cfg)

		names, lib, errs := linkedLibrary(cfg)
		reportErrors("link", errs)

		for _, m := range lib.Modules {
			fmt.Printf("module %s (placement %d)\n", names.Str(m.NameID), m.PlacementIndex)
		}
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
