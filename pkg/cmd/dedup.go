package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/synthkit/wlnc/pkg/wln/equivalence"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup wln_file",
	Short: "run the full pipeline and deduplicate combinationally-equivalent module AIGs.",
	Long:  "Blast every module, then repeatedly merge pairs proven combinationally equivalent, re-blasting the library after each merge.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "dedup"))
		setupLogging(cfg)

		names, lib, errs := blastedLibrary(cfg)
		reportErrors("blast", errs)

		before := make(map[int]int, len(lib.Modules))
		for _, m := range lib.Modules {
			if m.AIG != nil {
				before[m.NameID] = m.AIG.AndCount()
			}
		}

		reportErrors("dedup", equivalence.Dedup(lib))

		for _, m := range lib.Modules {
			if m.AIG == nil {
				continue
			}

			fmt.Printf("module %s: %d -> %d and-gates\n", names.Str(m.NameID), before[m.NameID], m.AIG.AndCount())
		}
	},
}

func init() {
	rootCmd.AddCommand(dedupCmd)
}
