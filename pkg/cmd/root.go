// Package cmd implements the wlnc command-line driver: one subcommand per
// pipeline stage of spec.md §3 (parse, link, normalize, schedule, blast,
// dedup, verify), plus a dump subcommand and an interactive inspector.
//
// Grounded on pkg/cmd/root.go's rootCmd/Execute pattern and its
// PersistentFlags-at-init convention.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building via make, but not when installing via
// "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "wlnc",
	Short: "A toolbox for the word-level netlist (wln) intermediate representation.",
	Long:  "A toolbox for the word-level netlist (wln) intermediate representation: tokenizer, parser, linker, normalizer, scheduler, bit-blaster and equivalence driver.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("wlnc ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once to rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg Config) {
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
