package questions

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Extract scans the first cfg.PageLimit pages of the PDF at documentPath with
// every matcher and writes the candidates to cfg.OutputPath. The report is
// written only after all pages were scanned; any failure leaves it untouched.
func Extract(ctx context.Context, documentPath string, cfg Config) (Result, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return Result{}, err
	}
	doc, err := openDocument(documentPath, cfg.Reader)
	if err != nil {
		return Result{}, &DocumentOpenError{Path: documentPath, Err: err}
	}
	defer doc.Close()

	cfg.Logger.Debug("document opened",
		zap.String("document", documentPath),
		zap.String("reader", cfg.Reader),
		zap.Int("pages", doc.NumPage()),
	)
	return extractDocument(ctx, doc, cfg)
}

func extractDocument(ctx context.Context, doc Document, cfg Config) (Result, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	total := doc.NumPage()
	limit := max(min(cfg.PageLimit, total), 0)

	var candidates []Candidate
	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		text, err := doc.PageText(i)
		if err != nil {
			return Result{}, &PageExtractionError{Page: i + 1, Err: err}
		}
		before := len(candidates)
		candidates = classify(candidates, i+1, text)
		cfg.Logger.Debug("page scanned",
			zap.Int("page", i+1),
			zap.Int("chars", len(text)),
			zap.Int("candidates", len(candidates)-before),
		)
	}

	err := writeReportFile(cfg.OutputPath, func(w io.Writer) error {
		return WriteReport(w, candidates)
	})
	if err != nil {
		return Result{}, err
	}
	cfg.Logger.Info("report written",
		zap.String("output", cfg.OutputPath),
		zap.Int("pages_scanned", limit),
		zap.Int("count", len(candidates)),
	)
	return Result{
		Count:        len(candidates),
		PagesScanned: limit,
		TotalPages:   total,
		OutputPath:   cfg.OutputPath,
		Candidates:   candidates,
	}, nil
}

// Classify returns every candidate in one page's text: all matches of the
// first matcher, then all of the second, and so on. Overlaps are kept.
func Classify(page int, text string) []Candidate {
	return classify(nil, page, text)
}

func classify(dst []Candidate, page int, text string) []Candidate {
	for _, m := range matchers {
		for sp := range m.All(text) {
			dst = append(dst, Candidate{Page: page, Matcher: m.Name, Text: sp.Text})
		}
	}
	return dst
}

func (c Config) normalize() (Config, error) {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Reader == "" {
		c.Reader = ReaderRSC
	}
	if c.PageLimit < 0 {
		return c, fmt.Errorf("%w: page limit %d is negative", ErrInvalidConfig, c.PageLimit)
	}
	if !validReader(c.Reader) {
		return c, fmt.Errorf("%w: unknown reader %q", ErrInvalidConfig, c.Reader)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c, nil
}
