// Package fs applies transformers to files and directory trees on disk.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlrag"
	"golang.org/x/sync/errgroup"
)

// Ensure Processor implements htmlrag.FileProcessor at compile time.
var _ htmlrag.FileProcessor = (*Processor)(nil)

// DefaultConcurrency is the number of files transformed at once by
// ProcessDir.
const DefaultConcurrency = 4

// htmlExt is the only extension ProcessDir transforms, compared
// case-insensitively.
const htmlExt = ".html"

// Processor implements htmlrag.FileProcessor.
type Processor struct {
	transformer   htmlrag.Transformer
	concurrency   int
	skipUnchanged bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets how many files ProcessDir transforms in parallel.
// Values below one fall back to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		p.concurrency = n
	}
}

// WithSkipUnchanged leaves output files alone when they already hold the
// transformed content.
func WithSkipUnchanged(skip bool) Option {
	return func(p *Processor) {
		p.skipUnchanged = skip
	}
}

// NewProcessor creates a Processor that writes the output of t.
func NewProcessor(t htmlrag.Transformer, opts ...Option) *Processor {
	p := &Processor{transformer: t, concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(p)
	}
	if p.concurrency < 1 {
		p.concurrency = DefaultConcurrency
	}
	return p
}

// ProcessFile reads inputPath, transforms it and writes the result to
// outputPath.
func (p *Processor) ProcessFile(ctx context.Context, inputPath, outputPath string) (*htmlrag.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(inputPath)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, htmlrag.Errorf(htmlrag.ENOTFOUND, "input file not found: %s", inputPath)
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", inputPath, err)
	}

	out, err := p.transformer.Transform(string(data))
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", inputPath, err)
	}

	res := &htmlrag.FileResult{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		InputBytes:  len(data),
		OutputBytes: len(out),
		Hash:        Hash(out),
	}

	if p.skipUnchanged && p.unchanged(outputPath, res.Hash) {
		res.Unchanged = true
		return res, nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := writeFile(outputPath, out); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}
	return res, nil
}

func (p *Processor) unchanged(path, hash string) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return Hash(string(existing)) == hash
}

type job struct {
	in, out string
}

// ProcessDir mirrors inputDir into outputDir. Every directory is recreated,
// regular .html files are transformed and other entries are skipped. When
// outputDir lies inside inputDir it is not walked. Results follow walk order.
func (p *Processor) ProcessDir(ctx context.Context, inputDir, outputDir string) ([]*htmlrag.FileResult, error) {
	info, err := os.Stat(inputDir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, htmlrag.Errorf(htmlrag.ENOTFOUND, "input directory not found: %s", inputDir)
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", inputDir, err)
	} else if !info.IsDir() {
		return nil, htmlrag.Errorf(htmlrag.EINVALID, "not a directory: %s", inputDir)
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	var jobs []job
	err = filepath.WalkDir(inputDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(outputDir, rel)

		if d.IsDir() {
			if path != inputDir {
				if abs, err := filepath.Abs(path); err == nil && abs == absOut {
					return filepath.SkipDir
				}
			}
			return os.MkdirAll(target, 0755)
		}

		if !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(path), htmlExt) {
			return nil
		}
		jobs = append(jobs, job{in: path, out: target})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", inputDir, err)
	}

	results := make([]*htmlrag.FileResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			res, err := p.ProcessFile(gctx, j.in, j.out)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeFile writes content to a temporary file next to path and renames it
// into place, so readers never see a partial file.
func writeFile(path, content string) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
