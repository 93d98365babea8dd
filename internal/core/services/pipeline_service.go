package services

import (
	"context"
	"runtime"
	"sync"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
)

// MaxAutoWorkers caps the automatically sized worker pool
const MaxAutoWorkers = 32

// AssetReader processes a single asset file
type AssetReader interface {
	Read(ctx context.Context, file domain.AssetFile) (domain.ProcessedAsset, error)
}

// PipelineService fans asset files out to a bounded worker pool
type PipelineService struct {
	reader     AssetReader
	maxWorkers int
}

// NewPipelineService creates a pipeline. maxWorkers <= 0 selects DefaultWorkerCount.
func NewPipelineService(reader AssetReader, maxWorkers int) *PipelineService {
	if maxWorkers <= 0 {
		maxWorkers = DefaultWorkerCount()
	}
	return &PipelineService{
		reader:     reader,
		maxWorkers: maxWorkers,
	}
}

// DefaultWorkerCount returns min(32, 2*NumCPU), at least 1
func DefaultWorkerCount() int {
	return clampWorkers(runtime.NumCPU() * 2)
}

func clampWorkers(n int) int {
	if n > MaxAutoWorkers {
		n = MaxAutoWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Workers returns the configured pool size
func (s *PipelineService) Workers() int {
	return s.maxWorkers
}

// pipelineJob pairs a file with its position in the input
type pipelineJob struct {
	index int
	file  domain.AssetFile
}

// pipelineResult carries a processed asset back to its input position
type pipelineResult struct {
	index int
	asset domain.ProcessedAsset
	err   error
}

// Process reads every file concurrently. The returned slice has the same
// order as files. One failing file does not stop the others; the first error
// in input order is returned once all workers are done.
func (s *PipelineService) Process(ctx context.Context, files []domain.AssetFile) ([]domain.ProcessedAsset, error) {
	if len(files) == 0 {
		return []domain.ProcessedAsset{}, nil
	}

	workers := s.maxWorkers
	if workers > len(files) {
		workers = len(files)
	}

	// Create channels for work distribution
	jobs := make(chan pipelineJob, len(files))
	results := make(chan pipelineResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx, jobs, results)
		}()
	}

	for i, file := range files {
		jobs <- pipelineJob{index: i, file: file}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	assets := make([]domain.ProcessedAsset, len(files))
	errs := make([]error, len(files))
	for result := range results {
		assets[result.index] = result.asset
		errs[result.index] = result.err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return assets, nil
}

// worker drains the jobs channel
func (s *PipelineService) worker(ctx context.Context, jobs <-chan pipelineJob, results chan<- pipelineResult) {
	for job := range jobs {
		asset, err := s.reader.Read(ctx, job.file)
		results <- pipelineResult{
			index: job.index,
			asset: asset,
			err:   err,
		}
	}
}
