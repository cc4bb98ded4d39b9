// Package slog provides logging decorators for htmlrag services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmlrag"
)

// Ensure LoggingTransformer implements htmlrag.Transformer.
var _ htmlrag.Transformer = (*LoggingTransformer)(nil)

// LoggingTransformer wraps a Transformer and logs how much each document
// shrank. Profiles come from inspector; when it is nil only sizes are logged.
type LoggingTransformer struct {
	next      htmlrag.Transformer
	inspector htmlrag.Inspector
	logger    *slog.Logger
}

// NewLoggingTransformer creates a new LoggingTransformer.
func NewLoggingTransformer(next htmlrag.Transformer, inspector htmlrag.Inspector, logger *slog.Logger) *LoggingTransformer {
	return &LoggingTransformer{next: next, inspector: inspector, logger: logger}
}

// Transform delegates to the wrapped transformer and logs the result.
func (t *LoggingTransformer) Transform(html string) (out string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			t.logger.Error("optimize",
				"bytes_in", len(html),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		t.logger.Info("optimize", t.attrs(html, out, time.Since(begin))...)
	}(time.Now())
	return t.next.Transform(html)
}

func (t *LoggingTransformer) attrs(in, out string, d time.Duration) []any {
	before := &htmlrag.Profile{Bytes: len(in)}
	after := &htmlrag.Profile{Bytes: len(out)}
	attrs := []any{"bytes_in", before.Bytes, "bytes_out", after.Bytes}

	if t.inspector != nil {
		if p, err := t.inspector.Inspect(in); err == nil {
			before = p
		} else {
			t.logger.Debug("inspect input", "err", err)
		}
		if out != "" {
			if p, err := t.inspector.Inspect(out); err == nil {
				after = p
			} else {
				t.logger.Debug("inspect output", "err", err)
			}
		}
		attrs = append(attrs,
			"elements_in", before.Elements,
			"elements_out", after.Elements,
			"attributes_in", before.Attributes,
			"attributes_out", after.Attributes,
			"text_in", before.TextBytes,
			"text_out", after.TextBytes,
		)
		if before.Title != "" {
			attrs = append(attrs, "title", before.Title)
		}
	}

	before.Bytes, after.Bytes = len(in), len(out)
	return append(attrs,
		"reduction", before.Reduction(after),
		"duration", d,
	)
}
