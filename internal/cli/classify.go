package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/courtline/milestones/internal/domain/milestone"
	"github.com/courtline/milestones/internal/infrastructure/gamefile"
	"github.com/courtline/milestones/internal/interfaces/report"
	"github.com/courtline/milestones/internal/usecase"
)

var (
	classifyWorkers   int
	classifyPretty    bool
	classifyOutputDir string
	classifySummary   bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file-or-dir>...",
	Short: "Classify box score files into milestone reports",
	Long: "Classify one or more box score JSON files. Each input file is an " +
		"independent run producing its own <name>.milestones.json report.",
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().IntVar(&classifyWorkers, "workers", 0, "worker pool size (default from CLASSIFY_WORKERS)")
	classifyCmd.Flags().BoolVar(&classifyPretty, "pretty", true, "indent JSON reports")
	classifyCmd.Flags().StringVar(&classifyOutputDir, "output-dir", "", "report directory (default alongside each input)")
	classifyCmd.Flags().BoolVar(&classifySummary, "summary", true, "print a per-file summary table")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	workers := classifyWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}
	pretty := classifyPretty
	if !cmd.Flags().Changed("pretty") {
		pretty = cfg.PrettyJSON
	}
	outputDir := strings.TrimSpace(classifyOutputDir)
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	paths, err := gamefile.Discover(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no JSON input files found")
	}

	engine, err := milestone.NewEngine(milestone.DefaultConfig())
	if err != nil {
		return err
	}
	classifier, err := usecase.NewMilestoneService(engine, logger)
	if err != nil {
		return err
	}
	batch, err := usecase.NewBatchService(classifier, gamefile.NewLoader(), logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := batch.Run(ctx, usecase.BatchInput{
		Paths:      paths,
		MaxWorkers: workers,
	})
	if err != nil {
		return err
	}

	now := time.Now()
	for _, row := range result.Files {
		if row.Status != "success" || row.Results == nil {
			fmt.Fprintf(os.Stderr, "FAILED %s: %s\n", row.Path, row.Message)
			continue
		}

		reportPath := reportPathFor(row.Path, outputDir)
		if err := writeReport(reportPath, report.BuildDocument(row.Results, row.Games, now), pretty); err != nil {
			return err
		}

		if classifySummary {
			fmt.Fprintf(os.Stdout, "\n%s (%d games, report: %s)\n", row.Path, row.Games, reportPath)
			report.PrintSummaryTable(os.Stdout, row.Results)
		}
	}

	fmt.Fprintf(os.Stdout, "\nProcessed %d files: %d ok, %d failed, %d milestones\n",
		result.FileCount, result.SuccessCount, result.FailedCount, result.MilestoneCount)

	if result.FailedCount > 0 {
		return fmt.Errorf("%d of %d files failed", result.FailedCount, result.FileCount)
	}
	return nil
}

func reportPathFor(inputPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, base+".milestones.json")
}

func writeReport(path string, doc report.Document, pretty bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return crerr.Wrapf(err, "create report dir %q", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return crerr.Wrapf(err, "create report file %q", path)
	}
	defer func() {
		_ = f.Close()
	}()

	return report.WriteJSON(f, doc, pretty)
}
