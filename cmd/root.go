package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobarrel/internal/config"
	"github.com/alexiusacademia/gobarrel/internal/logger"
	"github.com/alexiusacademia/gobarrel/internal/refdata"
	"github.com/alexiusacademia/gobarrel/internal/units"
	"github.com/alexiusacademia/gobarrel/internal/version"
)

var (
	cfgFile     string
	flagUnits   string
	flagDataDir string
	flagDebug   bool
)

// Set up by PersistentPreRunE before any subcommand runs.
var (
	cfg  = config.Default()
	repo = refdata.NewRepository("", nil)
)

var rootCmd = &cobra.Command{
	Use:   "gobarrel",
	Short: "Gun Barrel Pressure Vessel Analysis Tool",
	Long: `gobarrel - Go Barrel Stress Analyzer

A CLI tool for the stress analysis of gun barrels treated as
thick-walled pressure vessels.

This tool helps designers perform:
  - Lamé stress analysis of a single barrel wall
  - Von Mises safety factors, yield and burst pressure
  - Shrink-fit (barrel + trunnion) compound cylinder analysis
  - Worst-case tolerance and pressure-variation analysis

Units are mm and MPa throughout unless --units imperial is given.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gobarrel v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Barrel Stress Analyzer                               ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the stress analysis of gun barrels")
		fmt.Fprintln(out, "  treated as thick-walled pressure vessels.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Lamé stresses, Von Mises safety factors and burst pressure")
		fmt.Fprintln(out, "    • Barrel + trunnion shrink-fit analysis")
		fmt.Fprintln(out, "    • Worst-case tolerance stack-up")
		fmt.Fprintln(out, "    • Material, cartridge and fit catalogues")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gobarrel --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&flagUnits, "units", "", "Display units: metric or imperial")
	pf.StringVar(&flagDataDir, "data-dir", "", "Directory with materials/cartridges/tolerances/pressure YAML files")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// setup loads the config, applies flag overrides and builds the logger and
// the reference-data repository.
func setup(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("units") {
		c.Units = flagUnits
	}
	if flags.Changed("data-dir") {
		c.DataDir = flagDataDir
	}
	if flags.Changed("debug") {
		c.Debug = flagDebug
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("in configuration: %w", err)
	}

	cfg = c
	l := logger.New(cmd.ErrOrStderr(), c.Debug)
	slog.SetDefault(l)
	repo = refdata.NewRepository(c.DataDir, l)

	l.Debug("config", "units", c.Units, "data_dir", c.DataDir, "tolerance", c.Solver.Tolerance, "max_iterations", c.Solver.MaxIterations)
	return nil
}

func unitSystem() units.System {
	return cfg.UnitSystem()
}
