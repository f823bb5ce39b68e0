package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/synthkit/wlnc/pkg/wln/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect wln_file",
	Short: "inspect a netlist file using an interactive terminal browser.",
	Long:  "Run the full front end and open an interactive terminal browser over the resulting library: one tab per module, showing its wires and cell instances.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "inspect"))
		setupLogging(cfg)

		_, lib, errs := scheduledLibrary(cfg)
		reportErrors("inspect", errs)

		if err := inspect.Run(lib); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
