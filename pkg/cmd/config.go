package cmd

import "github.com/spf13/cobra"

// Config threads pipeline options from the CLI into the library-building
// pipeline (teacher: corset.CompilationConfig). It is built once per
// invocation from cobra flags and passed by value into every stage in
// pipeline.go, rather than having each stage reach back into cmd.Flags()
// mid-pipeline.
type Config struct {
	// Path is the input netlist file.
	Path string
	// Debug writes temp<N>.aig artifacts during blasting.
	Debug bool
	// OutputDir is the directory temp<N>.aig artifacts are written into.
	OutputDir string
	// Top names the top module for verify; empty selects the last module
	// in dependency order.
	Top string
	// Dedup enables the EquivalenceDriver pass after blasting.
	Dedup bool
	// Verbose raises the logging level to Debug.
	Verbose bool
}

// configFromFlags builds a Config from path and whichever of the optional
// flags are actually registered on cmd, since not every subcommand exposes
// every flag.
func configFromFlags(cmd *cobra.Command, path string) Config {
	cfg := Config{Path: path, Verbose: GetFlag(cmd, "verbose")}

	if cmd.Flags().Lookup("debug") != nil {
		cfg.Debug = GetFlag(cmd, "debug")
	}

	if cmd.Flags().Lookup("output") != nil {
		cfg.OutputDir = GetString(cmd, "output")
	}

	if cmd.Flags().Lookup("top") != nil {
		cfg.Top = GetString(cmd, "top")
	}

	if cmd.Flags().Lookup("dedup") != nil {
		cfg.Dedup = GetFlag(cmd, "dedup")
	}

	return cfg
}
