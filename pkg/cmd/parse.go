package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/synthkit/wlnc/pkg/wln/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse wln_file",
	Short: "tokenize and parse a netlist file, reporting any errors.",
	Long:  "Tokenize and parse a netlist file into the in-memory library, without linking or normalizing it.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "parse"))
		setupLogging(cfg)

		_, lib, err := readLibrary(cfg)
		reportError("parse", err)

		if GetFlag(cmd, "print") {
			fmt.Print(printer.Print(lib))
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("print", false, "print the parsed library back out")
}
