package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/synthkit/wlnc/pkg/wln/equivalence"
)

var blastCmd = &cobra.Command{
	Use:   "blast wln_file",
	Short: "run the full front end through bit-blasting.",
	Long:  "Parse, link, normalize, schedule and bit-blast a netlist file, reporting each module's AIG size. With --debug, writes one temp<N>.aig artifact per module. With --dedup, deduplicates equivalent module AIGs first.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd, requireOneArg(args, "blast"))
		setupLogging(cfg)

		names, lib, errs := blastedLibrary(cfg)
		reportErrors("blast", errs)

		if cfg.Dedup {
			reportErrors("dedup", equivalence.Dedup(lib))
		}

		counter := 0

		for _, m := range lib.Modules {
			if m.AIG == nil {
				continue
			}

			fmt.Printf("module %s: %d inputs, %d outputs, %d and-gates\n",
				names.Str(m.NameID), m.AIG.InputCount(), m.AIG.OutputCount(), m.AIG.AndCount())

			if cfg.Debug {
				p := filepath.Join(cfg.OutputDir, fmt.Sprintf("temp%d.aig", counter))
				counter++

				if err := m.AIG.WriteAiger(p); err != nil {
					fmt.Println(err)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(blastCmd)
	blastCmd.Flags().Bool("debug", false, "write temp<N>.aig artifacts for each module")
	blastCmd.Flags().StringP("output", "o", ".", "directory to write temp<N>.aig artifacts into")
	blastCmd.Flags().Bool("dedup", false, "deduplicate equivalent module AIGs before reporting")
}
