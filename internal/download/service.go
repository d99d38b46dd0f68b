// Package download orchestrates a single transcript download: normalize
// the reference, fetch once, write the selected output files.
package download

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/fireflies-dl/errors"
	"github.com/johnquangdev/fireflies-dl/internal/fireflies"
	"github.com/johnquangdev/fireflies-dl/internal/report"
	"github.com/johnquangdev/fireflies-dl/pkg/validator"
)

// Output formats
const (
	FormatTxt  = "txt"
	FormatJSON = "json"
	FormatBoth = "both"
)

// Options control where and how transcript files are written.
type Options struct {
	OutputDir string `validate:"required"`
	Format    string `validate:"oneof=txt json both"`
}

// Service downloads a transcript and writes the requested output files.
type Service struct {
	client *fireflies.Client
	logger *zap.Logger
}

// NewService creates a download service.
func NewService(client *fireflies.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Run fetches the transcript referenced by ref and writes it into
// opts.OutputDir as <id>.json and/or <id>.txt. The first error aborts
// the run; files already written are left in place.
func (s *Service) Run(ctx context.Context, ref string, opts Options) error {
	if err := validator.New().Validate(&opts); err != nil {
		return apperrors.ErrInvalidInput("output format must be txt, json or both")
	}

	id, err := fireflies.ExtractID(ref)
	if err != nil {
		return err
	}

	s.logger.Info("downloading transcript", zap.String("id", id))

	transcript, raw, err := s.client.GetTranscript(ctx, id)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return apperrors.ErrFileWrite(opts.OutputDir, err)
	}

	if opts.Format == FormatJSON || opts.Format == FormatBoth {
		path := filepath.Join(opts.OutputDir, id+".json")
		if err := writeJSON(path, raw); err != nil {
			return err
		}
		s.logger.Info("saved", zap.String("path", path))
	}

	if opts.Format == FormatTxt || opts.Format == FormatBoth {
		path := filepath.Join(opts.OutputDir, id+".txt")
		if err := writeFile(path, []byte(report.Render(transcript))); err != nil {
			return err
		}
		s.logger.Info("saved", zap.String("path", path))
	}

	return nil
}

// writeJSON re-indents the raw API payload without reordering fields.
func writeJSON(path string, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return apperrors.ErrAPI(err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.ErrFileWrite(path, err)
	}
	return nil
}
