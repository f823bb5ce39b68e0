package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule wln_file",
	Short: "parse, link, normalize and schedule a netlist file.",
	Long:  "Run the pipeline through scheduling, reporting each module's dataflow order length and any combinational cycle found.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "schedule"))
		setupLogging(cfg)

		names, lib, errs := scheduledLibrary(cfg)
		reportErrors("schedule", errs)

		for _, m := range lib.Modules {
			fmt.Printf("module %s: %d cells/conns scheduled\n", names.Str(m.NameID), len(m.Order))
		}
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
