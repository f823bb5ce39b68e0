package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/synthkit/wlnc/pkg/wln/printer"
)

var dumpCmd = &cobra.Command{
	Use:   "dump wln_file",
	Short: "run the full front end and print the library back out in its input grammar.",
	Long:  "Parse, link, normalize and schedule a netlist file, then print it back out in the same grammar it was read from, to sanity-check the front end round-trips.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "dump"))
		setupLogging(cfg)

		_, lib, errs := scheduledLibrary(cfg)
		reportErrors("dump", errs)

		fmt.Print(printer.Print(lib))
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
