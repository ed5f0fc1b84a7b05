package questions

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ExtractChoices sends the whole file (an image or a PDF) to cfg.Parser and
// writes the multiple-choice questions it returns to cfg.OutputPath.
func ExtractChoices(ctx context.Context, path string, cfg Config) (Result, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return Result{}, err
	}
	if cfg.Parser == nil {
		return Result{}, fmt.Errorf("%w: no question parser configured", ErrInvalidConfig)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, &DocumentOpenError{Path: path, Err: err}
	}
	mt := mimeTypeFor(path)
	cfg.Logger.Debug("parsing questions",
		zap.String("document", path),
		zap.String("mime_type", mt),
		zap.Int("bytes", len(data)),
	)
	qs, err := cfg.Parser.ParseQuestions(ctx, data, mt)
	if err != nil {
		return Result{}, &PageExtractionError{Err: err}
	}
	err = writeReportFile(cfg.OutputPath, func(w io.Writer) error {
		return WriteChoiceReport(w, qs)
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Count: len(qs), OutputPath: cfg.OutputPath, Choices: qs}, nil
}

func mimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return "application/pdf"
	}
	if mt := mime.TypeByExtension(ext); strings.HasPrefix(mt, "image/") {
		return mt
	}
	return "image/jpeg"
}
