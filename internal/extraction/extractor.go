// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"
)

// Extractor applies every pattern of a registry to a text.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	registry      *Registry
	maxInputBytes int
	logger        *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxInputBytes rejects inputs longer than n bytes. Zero means no limit.
func WithMaxInputBytes(n int) Option {
	return func(e *Extractor) {
		e.maxInputBytes = n
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

// NewExtractor creates an Extractor over registry. A nil registry selects
// the default one.
func NewExtractor(registry *Registry, opts ...Option) *Extractor {
	if registry == nil {
		registry = Default()
	}
	e := &Extractor{
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the extractor scans with.
func (e *Extractor) Registry() *Registry {
	return e.registry
}

// WithRegistry returns a copy of e that scans with registry instead.
func (e *Extractor) WithRegistry(registry *Registry) *Extractor {
	c := *e
	c.registry = registry
	return &c
}

// Result is the output of a successful extraction with run metadata.
type Result struct {
	Report       *Report
	TotalMatches int
	InputBytes   int
	Elapsed      time.Duration
}

// Extract scans text with every registered pattern and returns a report with
// an entry per category. On error no report is returned.
func (e *Extractor) Extract(ctx context.Context, text string) (*Report, error) {
	result, err := e.ExtractWithMeta(ctx, text)
	if err != nil {
		return nil, err
	}
	return result.Report, nil
}

func (e *Extractor) ExtractWithMeta(ctx context.Context, text string) (Result, error) {
	if err := e.checkInput(text); err != nil {
		return Result{}, fmt.Errorf("extraction failed: %w", err)
	}

	start := time.Now()
	report := newReport(e.registry.Len())
	for _, p := range e.registry.patterns {
		// The deadline is honoured between scans; a single scan runs in linear time.
		if err := ctx.Err(); err != nil {
			return Result{}, &ExtractionError{Category: p.Category, Err: err}
		}
		report.add(p.Category, p.FindAll(text))
	}

	result := Result{
		Report:       report,
		TotalMatches: report.Total(),
		InputBytes:   len(text),
		Elapsed:      time.Since(start),
	}
	e.logger.DebugContext(ctx, "extraction complete",
		"categories", report.Len(),
		"matches", result.TotalMatches,
		"bytes", result.InputBytes,
		"elapsed", result.Elapsed)
	return result, nil
}

func (e *Extractor) checkInput(text string) error {
	if e.maxInputBytes > 0 && len(text) > e.maxInputBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(text), e.maxInputBytes)
	}
	if !utf8.ValidString(text) {
		return ErrInvalidEncoding
	}
	return nil
}
