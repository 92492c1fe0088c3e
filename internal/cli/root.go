// Package cli wires the patrol commands together with cobra.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/internal/logging"
	"github.com/katalvlaran/patrol/labmap"
	"github.com/katalvlaran/patrol/search"
	"github.com/katalvlaran/patrol/simulate"
)

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	workers    int
	noColor    bool

	cfg config.Config
	log *bolt.Logger
}

// NewRootCmd builds the patrol command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "patrol",
		Short:   "Simulate the lab guard's patrol",
		Version: version,
		Long: `patrol reads a lab map and simulates the guard walking it:
straight ahead until something blocks the way, then a right turn.

It answers two questions about a map:
- how many distinct cells the guard covers before leaving (visited)
- how many single new obstructions would trap the guard in a loop (loops)

Pass "-" as FILE to read the map from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: console or json")
	flags.IntVar(&a.workers, "workers", 0, "concurrent simulations during the loop search (0 = all CPUs)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured map output")

	rootCmd.AddCommand(visitedCmd(a))
	rootCmd.AddCommand(loopsCmd(a))
	rootCmd.AddCommand(solveCmd(a))
	rootCmd.AddCommand(renderCmd(a))

	return rootCmd
}

// resolve loads the config file and applies flag overrides on top.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Logging(cmd.ErrOrStderr()))
	return nil
}

// simulateOptions maps the config onto simulator options.
func (a *app) simulateOptions() []simulate.Option {
	opts := []simulate.Option{simulate.WithMaxSteps(a.cfg.MaxSteps)}
	if a.cfg.Log.Level == "trace" {
		opts = append(opts, simulate.WithOnStep(logging.StepTracer(a.log)))
	}
	return opts
}

// searchOptions maps the config onto search options.
func (a *app) searchOptions(cmd *cobra.Command, candidates int) []search.Option {
	opts := []search.Option{
		search.WithContext(cmd.Context()),
		search.WithWorkers(a.cfg.Workers),
		search.WithSimulateOptions(a.simulateOptions()...),
	}
	if a.cfg.Log.Level == "trace" || a.cfg.Log.Level == "debug" {
		opts = append(opts, search.WithOnCandidate(logging.CandidateProgress(a.log, candidates)))
	}
	return opts
}

// loadMap parses the map at path, or stdin for "-".
func (a *app) loadMap(cmd *cobra.Command, path string) (*labmap.Map, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		r = f
	}

	m, err := labmap.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.With(a.log.Info(), logging.Component("cli"), logging.Grid(m.Grid), logging.Agent(m.Guard)).
		Str("map", path).
		Msg("map loaded")
	return m, nil
}
