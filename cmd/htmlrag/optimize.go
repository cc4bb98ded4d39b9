package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/htmlrag"
	"github.com/fwojciec/htmlrag/fs"
	"github.com/fwojciec/htmlrag/goquery"
	"github.com/fwojciec/htmlrag/htmltomarkdown"
	"github.com/fwojciec/htmlrag/optimizer"
	"github.com/fwojciec/htmlrag/readability"
	ragslog "github.com/fwojciec/htmlrag/slog"
	"github.com/fwojciec/htmlrag/trafilatura"
)

// Run optimizes a single file or mirrors a directory, depending on flags.
func (c *CLI) Run(deps *Dependencies) error {
	dirMode := c.InputDir != "" || c.OutputDir != ""
	if dirMode && (c.InputDir == "" || c.OutputDir == "") {
		return htmlrag.Errorf(htmlrag.EINVALID, "--input-dir and --output-dir must be used together")
	}
	if !dirMode {
		if c.Input == "" {
			return htmlrag.Errorf(htmlrag.EINVALID, "input file or --input-dir is required")
		}
		if c.Output == "" {
			return htmlrag.Errorf(htmlrag.EINVALID, "output file (-o) is required for single file processing")
		}
	}

	opts, err := c.options()
	if err != nil {
		return err
	}

	processor := c.processor(opts, deps.Stderr)

	if dirMode {
		results, err := processor.ProcessDir(deps.Ctx, c.InputDir, c.OutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Directory optimization completed: %s -> %s (%d files)\n", c.InputDir, c.OutputDir, len(results))
		return nil
	}

	if _, err := processor.ProcessFile(deps.Ctx, c.Input, c.Output); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Optimization completed: %s -> %s\n", c.Input, c.Output)
	return nil
}

// options resolves optimization settings: defaults, then flags, then the
// config file.
func (c *CLI) options() (htmlrag.Options, error) {
	opts := []htmlrag.Option{
		htmlrag.WithKeepAttributes(c.KeepAttributes),
		htmlrag.WithPreserveWhitespace(c.PreserveWhitespace),
		htmlrag.WithExcludeTags(c.ExcludeTags...),
		htmlrag.WithKeepTags(c.KeepTags...),
	}

	if c.Config != "" {
		ov, err := loadConfig(c.Config)
		if err != nil {
			return htmlrag.Options{}, err
		}
		opts = append(opts, htmlrag.WithOverrides(ov))
	}

	return htmlrag.NewOptions(opts...), nil
}

func (c *CLI) processor(opts htmlrag.Options, stderr io.Writer) htmlrag.FileProcessor {
	engine := optimizer.New()
	engine.ForceStructural = c.Structural

	pipeline := &optimizer.Pipeline{
		Engine:  engine,
		Options: opts,
	}
	switch c.Extract {
	case "trafilatura":
		pipeline.Extractor = trafilatura.NewExtractor()
	case "readability":
		pipeline.Extractor = readability.NewExtractor()
	}
	if c.Markdown {
		pipeline.Converter = htmltomarkdown.NewConverter()
	}

	var transformer htmlrag.Transformer = pipeline
	var logger *slog.Logger
	if c.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		transformer = ragslog.NewLoggingTransformer(transformer, goquery.NewInspector(), logger)
	}

	var processor htmlrag.FileProcessor = fs.NewProcessor(transformer,
		fs.WithConcurrency(c.Concurrency),
		fs.WithSkipUnchanged(c.SkipUnchanged),
	)
	if logger != nil {
		processor = ragslog.NewLoggingProcessor(processor, logger)
	}
	return processor
}
