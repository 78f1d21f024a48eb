package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/gptube/internal/logger"
)

type implWriter struct {
	outputDir  string
	exportDocx bool
	logger     logger.Logger
}

// New creates a Writer that stores results under outputDir. With exportDocx
// each result is also rendered to <fileName>.docx.
func New(outputDir string, exportDocx bool, log logger.Logger) Writer {
	return &implWriter{
		outputDir:  outputDir,
		exportDocx: exportDocx,
		logger:     log,
	}
}

func (w *implWriter) Write(ctx context.Context, fileName, title, body string) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.outputDir, fileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	paths := []string{path}
	w.logger.Debug(ctx, "Summary written to %s", path)

	if w.exportDocx {
		docxPath := path + ".docx"
		if err := markdownToDocx(title, body, docxPath); err != nil {
			return paths, fmt.Errorf("export docx: %w", err)
		}
		paths = append(paths, docxPath)
		w.logger.Debug(ctx, "Summary exported to %s", docxPath)
	}

	return paths, nil
}
