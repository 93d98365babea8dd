package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
	"github.com/kamal-hamza/inlinegen/internal/core/ports"
	"github.com/kamal-hamza/inlinegen/pkg/cheader"
)

// GenerateService runs collect -> process -> render -> write
type GenerateService struct {
	source   ports.AssetSource
	pipeline *PipelineService
	logger   ports.Logger
	options  cheader.Options
}

// NewGenerateService creates the driver
func NewGenerateService(source ports.AssetSource, pipeline *PipelineService, logger ports.Logger, opts cheader.Options) *GenerateService {
	return &GenerateService{
		source:   source,
		pipeline: pipeline,
		logger:   logger,
		options:  opts,
	}
}

// GenerateRequest names the host-provided directories
type GenerateRequest struct {
	DataDir    string
	GenDir     string
	HeaderName string
}

// GenerateResponse describes one generation run
type GenerateResponse struct {
	Skipped     bool   // asset directory absent, nothing was done
	IncludePath string // directory the host must add to its header search path
	HeaderPath  string
	Workers     int
	Assets      []domain.ProcessedAsset
	Totals      domain.Totals
}

// Execute generates the header. A missing asset directory is not an error:
// the response is marked Skipped and nothing is created.
func (s *GenerateService) Execute(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	info, err := os.Stat(req.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return &GenerateResponse{Skipped: true}, nil
		}
		return nil, fmt.Errorf("failed to stat asset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset path is not a directory: %s", req.DataDir)
	}

	headerName := req.HeaderName
	if headerName == "" {
		headerName = "data.h"
	}

	if err := os.MkdirAll(req.GenDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := s.source.Collect(ctx, req.DataDir)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Processing %d files using %d threads...", len(files), s.pipeline.Workers())

	assets, err := s.pipeline.Process(ctx, files)
	if err != nil {
		return nil, err
	}

	content, err := cheader.Render(assets, s.options)
	if err != nil {
		return nil, fmt.Errorf("failed to render header: %w", err)
	}

	headerPath := filepath.Join(req.GenDir, headerName)
	if err := os.WriteFile(headerPath, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return &GenerateResponse{
		IncludePath: req.GenDir,
		HeaderPath:  headerPath,
		Workers:     s.pipeline.Workers(),
		Assets:      assets,
		Totals:      domain.ComputeTotals(assets),
	}, nil
}
