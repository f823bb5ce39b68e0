package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/synthkit/wlnc/pkg/wln/printer"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize wln_file",
	Short: "parse, link and normalize a netlist file.",
	Long:  "Parse, link and normalize a netlist file: reorder wires input-then-output, rebase slices, and repermute hierarchical port connections.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "normalize"))
		setupLogging(cfg)

		_, lib, errs := linkedLibrary(cfg)
		reportErrors("normalize", errs)

		if GetFlag(cmd, "print") {
			fmt.Print(printer.Print(lib))
		}
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().Bool("print", false, "print the normalized library back out")
}
