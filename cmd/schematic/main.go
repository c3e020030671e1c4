// Command schematic reads an engine schematic and prints either the sum of
// its gear ratios or the sum of its part numbers.
//
//	schematic gears engine.txt
//	schematic parts --config schematic.yaml
//	schematic init --symbol '#'
package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvschematic/config"
	"github.com/katalvlaran/lvschematic/schematic"
)

// app carries flag values and the state built by PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool
	symbol     string
	dedup      string
	force      bool

	cfg    *config.Config
	logger *zap.Logger
}

// buildLogger turns the validated configuration into a zap logger.
var buildLogger = func(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Logging.Format
	if zc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zc.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "schematic",
		Short: "Sum gear ratios and part numbers of an engine schematic",
		Long: `schematic reads a grid of digits, periods and symbols.

Numbers are maximal runs of digits; symbols are punctuation other than '.'.
A gear is a '*' (see --symbol) touching exactly two numbers, diagonals
included; its ratio is the product of the two. Blank lines are ignored.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "schematic.yaml", "path to the YAML configuration")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.symbol, "symbol", "", "gear symbol (overrides config)")
	pf.StringVar(&a.dedup, "dedup", "", "adjacency mode: case-table or identity (overrides config)")

	root.AddCommand(
		&cobra.Command{
			Use:   "gears [file]",
			Short: "Print the sum of all gear ratios",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runGears,
		},
		&cobra.Command{
			Use:   "parts [file]",
			Short: "Print the sum of all numbers adjacent to any symbol",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runParts,
		},
		a.initCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("symbol") {
		cfg.Symbol = a.symbol
	}
	if cmd.Flags().Changed("dedup") {
		cfg.Dedup = a.dedup
	}
	if a.verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// sync flushes the logger. RunE handlers defer it, since cobra skips
// PersistentPostRun when RunE fails.
func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the --config path",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
	cmd.Flags().BoolVar(&a.force, "force", false, "overwrite an existing configuration file")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	defer a.sync()

	if _, err := os.Stat(a.configPath); err == nil && !a.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := a.cfg.Save(a.configPath); err != nil {
		return err
	}
	a.logger.Info("config written",
		zap.String("path", a.configPath),
		zap.String("symbol", a.cfg.Symbol),
		zap.String("dedup", a.cfg.Dedup))

	_, err := fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
	return err
}

func (a *app) runGears(cmd *cobra.Command, args []string) error {
	return a.run(cmd, args, "gear ratio sum", schematic.GearRatioSum)
}

func (a *app) runParts(cmd *cobra.Command, args []string) error {
	return a.run(cmd, args, "part number sum", schematic.PartNumberSum)
}

func (a *app) run(cmd *cobra.Command, args []string, what string,
	compute func([]string, ...schematic.Option) (*big.Int, error)) error {
	defer a.sync()

	path := a.cfg.Input
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no input: pass a file or set input in %s", a.configPath)
	}

	lines, err := readLines(path)
	if err != nil {
		return err
	}
	a.logger.Debug("input read", zap.String("path", path), zap.Int("lines", len(lines)))

	opts, err := a.cfg.Options(a.logger)
	if err != nil {
		return err
	}
	sum, err := compute(lines, opts...)
	if err != nil {
		a.logger.Error("computation failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info(what,
		zap.String("path", path),
		zap.String("symbol", a.cfg.Symbol),
		zap.String("dedup", a.cfg.Dedup),
		zap.Stringer("sum", sum))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}

// readLines returns the non-blank lines of path, without line terminators.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}
