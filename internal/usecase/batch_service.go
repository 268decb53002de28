package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/courtline/milestones/internal/domain/boxscore"
	"github.com/courtline/milestones/internal/domain/milestone"
	"github.com/courtline/milestones/internal/platform/logging"
)

// GameSource loads parsed games from one input path.
type GameSource interface {
	LoadGames(ctx context.Context, path string) ([]boxscore.Game, error)
}

type BatchInput struct {
	Paths      []string
	MaxWorkers int
}

type BatchResult struct {
	FileCount      int               `json:"file_count"`
	SuccessCount   int               `json:"success_count"`
	FailedCount    int               `json:"failed_count"`
	MilestoneCount int               `json:"milestone_count"`
	WorkerCount    int               `json:"worker_count"`
	Files          []BatchFileResult `json:"files"`
}

type BatchFileResult struct {
	Path       string `json:"path"`
	Status     string `json:"status"`
	Games      int    `json:"games"`
	Milestones int    `json:"milestones"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`

	Results *milestone.Results `json:"-"`
}

const (
	batchStatusSuccess = "success"
	batchStatusFailed  = "failed"

	batchMaxWorkers = 8
)

// BatchService fans a set of input files out over a worker pool. Every file
// is an independent classification run with its own result set, so a decode
// failure in one file never poisons the others and no result set is ever
// written from two goroutines.
type BatchService struct {
	classifier *MilestoneService
	source     GameSource
	logger     *logging.Logger
}

func NewBatchService(classifier *MilestoneService, source GameSource, logger *logging.Logger) (*BatchService, error) {
	if classifier == nil {
		return nil, fmt.Errorf("%w: milestone service is required", ErrDependencyUnavailable)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: game source is required", ErrDependencyUnavailable)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BatchService{
		classifier: classifier,
		source:     source,
		logger:     logger,
	}, nil
}

func (s *BatchService) Run(ctx context.Context, input BatchInput) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchService.Run")
	defer span.End()

	if len(input.Paths) == 0 {
		return BatchResult{}, fmt.Errorf("%w: at least one input path is required", ErrInvalidInput)
	}

	workerCount := normalizeBatchWorkerCount(input.MaxWorkers, len(input.Paths))
	result := BatchResult{
		FileCount:   len(input.Paths),
		WorkerCount: workerCount,
		Files:       make([]BatchFileResult, 0, len(input.Paths)),
	}

	rows := make(chan BatchFileResult, len(input.Paths))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var milestoneCount atomic.Int64

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, path := range input.Paths {
		path := path
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.runFile(ctx, path)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case batchStatusSuccess:
				successCount.Add(1)
				milestoneCount.Add(int64(row.Milestones))
			default:
				failedCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return BatchResult{}, fmt.Errorf("submit file to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Files = append(result.Files, row)
	}

	sort.SliceStable(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.MilestoneCount = int(milestoneCount.Load())

	s.logger.InfoContext(ctx, "batch classification finished",
		"files", result.FileCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"milestones", result.MilestoneCount,
	)
	return result, nil
}

func (s *BatchService) runFile(ctx context.Context, path string) BatchFileResult {
	row := BatchFileResult{Path: path}

	games, err := s.source.LoadGames(ctx, path)
	if err != nil {
		row.Status = batchStatusFailed
		row.Message = err.Error()
		s.logger.WarnContext(ctx, "load games failed",
			"path", path,
			"error", err,
		)
		return row
	}

	results, err := s.classifier.ProcessGames(ctx, games)
	if err != nil {
		row.Status = batchStatusFailed
		row.Message = err.Error()
		return row
	}

	row.Status = batchStatusSuccess
	row.Games = len(games)
	row.Milestones = results.Count()
	row.Results = results
	return row
}

func normalizeBatchWorkerCount(value int, fileCount int) int {
	if fileCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > batchMaxWorkers {
		value = batchMaxWorkers
	}
	if value > fileCount {
		value = fileCount
	}
	return value
}
