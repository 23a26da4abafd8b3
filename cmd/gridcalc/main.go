// Package main provides the CLI entry point for gridcalc-go.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/output"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

var (
	verbose      bool
	mode         string
	sheet        string
	gridPath     string
	outputPath   string
	outputFormat string
	pretty       bool
	areaRef      string

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridcalc",
		Short: "Evaluate sheet formulas over a cell grid",
		Long: `gridcalc-go evaluates =SUM, =AVG and cell subtraction formulas over
grid snapshots (YAML, JSON) and Excel workbooks.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "compat", "Evaluation mode: compat, extended")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Workbook sheet (default: first sheet)")

	evalCmd := &cobra.Command{
		Use:   "eval FORMULA",
		Short: "Evaluate a single formula",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().StringVar(&gridPath, "grid", "", "Grid file the formula reads from")

	recalcCmd := &cobra.Command{
		Use:   "recalc INPUT",
		Short: "Recalculate every cell of a grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecalc,
	}
	recalcCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	recalcCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json, yaml, table")
	recalcCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	recalcCmd.Flags().StringVar(&areaRef, "area", "", "Area to print in table format (default: used area)")

	showCmd := &cobra.Command{
		Use:   "show INPUT",
		Short: "Print a grid as a table without recalculating",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().StringVar(&areaRef, "area", "", "Area to print (default: used area)")

	rootCmd.AddCommand(evalCmd, recalcCmd, showCmd)
	return rootCmd
}

func options() (gridcalc.Options, error) {
	m, err := gridcalc.ParseMode(mode)
	if err != nil {
		return gridcalc.Options{}, err
	}
	return gridcalc.Options{Mode: m, Logger: logger}, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	grid := models.Grid{}
	if gridPath != "" {
		if grid, err = gridcalc.Load(gridPath, sheet); err != nil {
			return fmt.Errorf("failed to load grid: %w", err)
		}
	}

	res := gridcalc.EvaluateResult(args[0], grid, opts)
	if err := res.Err(); err != nil {
		logger.Debug("Evaluation failed", zap.String("formula", args[0]), zap.Error(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Render(opts.Token()))
	return nil
}

func runRecalc(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	grid, err := gridcalc.Load(args[0], sheet)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}

	grid, report := gridcalc.Recalculate(grid, opts)
	logger.Info("Recalculated grid",
		zap.String("input", args[0]),
		zap.Int("cells", len(grid)),
		zap.Int("passes", report.Passes),
		zap.Bool("settled", report.Settled),
		zap.Int("errors", len(report.Errors)))

	// files with a grid extension are saved as grids, anything else gets the rendered output
	if outputPath != "" && !cmd.Flags().Changed("format") {
		if _, ok := gridcalc.FormatOf(outputPath); ok {
			if err := gridcalc.Save(outputPath, sheet, grid); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		}
	}

	var buf bytes.Buffer
	switch outputFormat {
	case "json":
		data, err := output.ToJSON(grid, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case "yaml":
		data, err := output.ToYAML(grid)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		buf.Write(data)
	case "table":
		useColor := outputPath == "" && colorEnabled(cmd.OutOrStdout())
		if err := renderTable(&buf, grid, opts, useColor); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format: %s (must be json, yaml, or table)", outputFormat)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

func runShow(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	grid, err := gridcalc.Load(args[0], sheet)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}
	return renderTable(cmd.OutOrStdout(), grid, opts, colorEnabled(cmd.OutOrStdout()))
}

func renderTable(w io.Writer, grid models.Grid, opts gridcalc.Options, useColor bool) error {
	area, ok := parser.UsedArea(grid)
	if areaRef != "" {
		parsed, err := parser.ParseArea(areaRef)
		if err != nil {
			return fmt.Errorf("invalid area: %w", err)
		}
		area, ok = parsed, true
	}
	if !ok {
		logger.Debug("Nothing to print, grid has no cells")
		return nil
	}

	return output.RenderTable(w, grid, area, output.TableOptions{
		ErrorToken: opts.Token(),
		Color:      useColor,
	})
}

// colorEnabled reports whether w is a terminal that accepts ANSI colors.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
