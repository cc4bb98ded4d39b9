package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlrag"
)

// Ensure LoggingProcessor implements htmlrag.FileProcessor.
var _ htmlrag.FileProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a FileProcessor with per-file and per-directory
// logging.
type LoggingProcessor struct {
	next   htmlrag.FileProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next htmlrag.FileProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// ProcessFile delegates to the wrapped processor and logs the operation.
func (p *LoggingProcessor) ProcessFile(ctx context.Context, inputPath, outputPath string) (res *htmlrag.FileResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Error("process file",
				"input", inputPath,
				"output", outputPath,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		p.logFile(res, time.Since(begin))
	}(time.Now())
	return p.next.ProcessFile(ctx, inputPath, outputPath)
}

// ProcessDir delegates to the wrapped processor, logging every file and the
// directory totals.
func (p *LoggingProcessor) ProcessDir(ctx context.Context, inputDir, outputDir string) (results []*htmlrag.FileResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Error("process directory",
				"input", inputDir,
				"output", outputDir,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}

		var in, out, unchanged int
		for _, r := range results {
			p.logger.Debug("file",
				"input", r.InputPath,
				"output", r.OutputPath,
				"bytes_in", r.InputBytes,
				"bytes_out", r.OutputBytes,
				"unchanged", r.Unchanged,
			)
			in += r.InputBytes
			out += r.OutputBytes
			if r.Unchanged {
				unchanged++
			}
		}
		p.logger.Info("process directory",
			"input", inputDir,
			"output", outputDir,
			"files", len(results),
			"unchanged", unchanged,
			"bytes_in", in,
			"bytes_out", out,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.ProcessDir(ctx, inputDir, outputDir)
}

func (p *LoggingProcessor) logFile(r *htmlrag.FileResult, d time.Duration) {
	if r == nil {
		return
	}
	p.logger.Info("process file",
		"input", r.InputPath,
		"output", r.OutputPath,
		"bytes_in", r.InputBytes,
		"bytes_out", r.OutputBytes,
		"hash", r.Hash,
		"unchanged", r.Unchanged,
		"duration", d,
	)
}
