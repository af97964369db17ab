// Package main provides the CLI entry point for fundcurate.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fundcurate-go/internal/config"
	"github.com/ukaji3/fundcurate-go/internal/logging"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/output"
)

var (
	outputDir    string
	prefix       string
	configPath   string
	sheets       []string
	reportStdout bool
	logLevel     string
	logFormat    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fundcurate [input.xlsx...]",
		Short: "Curate fund export workbooks into the research layout",
		Long: `fundcurate reads fund export workbooks, normalizes them into the
multi-tab research layout and writes a curated workbook plus a text report
of every change made.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for curated files (default from config: .)")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "Output file name prefix (default from config: funds_curated)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().StringSliceVar(&sheets, "sheets", nil, "Source sheet allow-list, in processing order")
	rootCmd.Flags().BoolVar(&reportStdout, "report-stdout", false, "Also print the change report to stdout")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text, json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	opts := fundcurate.Options{
		Sheets:    cfg.Input.Sheets,
		Sentinels: cfg.Input.Sentinels,
		Logger:    logger,
	}

	session := fundcurate.NewSession()
	now := time.Now()
	for _, inputPath := range args {
		filePrefix := cfg.Output.Prefix
		if len(args) > 1 {
			filePrefix += "_" + stem(inputPath)
		}
		if err := curateOne(cmd, session, inputPath, filePrefix, cfg.Output.Dir, now, opts, logger); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig loads the config file and environment, then applies flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.Output.Dir = outputDir
	}
	if flags.Changed("prefix") {
		cfg.Output.Prefix = prefix
	}
	if flags.Changed("sheets") {
		cfg.Input.Sheets = sheets
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func curateOne(cmd *cobra.Command, session *fundcurate.Session, inputPath, filePrefix, dir string, now time.Time, opts fundcurate.Options, logger *slog.Logger) error {
	data, err := os.ReadFile(inputPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", fundcurate.ErrFileNotFound, inputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if first, seen := session.Remember(inputPath, data); seen {
		logger.Warn("skipping input with same content as an earlier one", "input", inputPath, "first", first)
		return nil
	}

	res, err := fundcurate.CurateReader(bytes.NewReader(data), filepath.Base(inputPath), opts)
	if err != nil {
		return fmt.Errorf("curation of %s failed: %w", inputPath, err)
	}

	for _, sheet := range res.Sheets {
		src := res.Sources[sheet]
		logger.Debug("source sheet read", "input", inputPath, "sheet", sheet, "rows", src.Len(), "columns", len(src.Columns))
	}

	workbookName, reportName := output.FileNames(filePrefix, now)
	workbookPath := filepath.Join(dir, workbookName)
	reportPath := filepath.Join(dir, reportName)

	if err := output.WriteWorkbook(res.Workbook, workbookPath); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := output.WriteReport(res.Report, reportPath); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if reportStdout {
		if _, err := res.Report.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
	}

	logger.Info("curated workbook written",
		"run_id", res.RunID,
		"input", inputPath,
		"sheets", res.Sheets,
		"tabs", len(res.Workbook.Names()),
		"events", res.Report.Len(),
		"workbook", workbookPath,
		"report", reportPath)
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
