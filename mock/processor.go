package mock

import (
	"context"

	"github.com/fwojciec/htmlrag"
)

var _ htmlrag.FileProcessor = (*FileProcessor)(nil)

// FileProcessor is a mock implementation of htmlrag.FileProcessor.
type FileProcessor struct {
	ProcessFileFn func(ctx context.Context, inputPath, outputPath string) (*htmlrag.FileResult, error)
	ProcessDirFn  func(ctx context.Context, inputDir, outputDir string) ([]*htmlrag.FileResult, error)
}

func (p *FileProcessor) ProcessFile(ctx context.Context, inputPath, outputPath string) (*htmlrag.FileResult, error) {
	return p.ProcessFileFn(ctx, inputPath, outputPath)
}

func (p *FileProcessor) ProcessDir(ctx context.Context, inputDir, outputDir string) ([]*htmlrag.FileResult, error) {
	return p.ProcessDirFn(ctx, inputDir, outputDir)
}
