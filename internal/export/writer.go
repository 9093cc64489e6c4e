package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Writer persists an ExportSet as download files in the output directory.
type Writer interface {
	Write(ctx context.Context, bundle meeting.ResultBundle, opts Options) ([]string, error)
}

type implWriter struct {
	outputDir   string
	timestamped bool
	logger      logger.Logger
}

// NewWriter creates a Writer. With timestamped set, filenames carry a
// run timestamp so successive runs never overwrite each other.
func NewWriter(outputDir string, timestamped bool, log logger.Logger) Writer {
	return &implWriter{
		outputDir:   outputDir,
		timestamped: timestamped,
		logger:      log,
	}
}

// Write renders the bundle and writes transcript.txt, minutes.md,
// action_items.json and minutes.docx into the output directory, returning
// the written paths.
func (w *implWriter) Write(ctx context.Context, bundle meeting.ResultBundle, opts Options) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	set := Format(bundle, opts)
	var written []string

	files := []struct {
		prefix string
		ext    string
		data   []byte
	}{
		{"transcript", "txt", []byte(set.TranscriptText)},
		{"minutes", "md", []byte(set.MinutesMarkdown)},
		{"action_items", "json", set.ActionsJSON},
	}

	for _, f := range files {
		path := filepath.Join(w.outputDir, w.filename(f.prefix, f.ext))
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		w.logger.Info(ctx, "Wrote %s (%d bytes)", path, len(f.data))
		written = append(written, path)
	}

	docxPath := filepath.Join(w.outputDir, w.filename("minutes", "docx"))
	if err := minutesToDocx("Meeting Minutes", bundle.Minutes, bundle.Actions, docxPath); err != nil {
		// The docx is a convenience copy of minutes.md; its failure never
		// loses the primary outputs.
		w.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
	} else {
		w.logger.Info(ctx, "Wrote %s", docxPath)
		written = append(written, docxPath)
	}

	return written, nil
}

// filename returns prefix.ext, or prefix_YYYYMMDD_HHMMSS.ext when
// timestamped output is enabled.
func (w *implWriter) filename(prefix, ext string) string {
	if !w.timestamped {
		return prefix + "." + ext
	}
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
}
