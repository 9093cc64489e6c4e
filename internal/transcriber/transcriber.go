package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Transcribe runs whisper-cli over the normalized audio and parses its JSON
// output into a Transcript. Silent audio yields a transcript with zero
// segments, not an error.
func (t *implTranscriber) Transcribe(ctx context.Context, audio meeting.NormalizedAudio, opts Options) (meeting.Transcript, error) {
	if !validModelSize(opts.ModelSize) {
		return meeting.Transcript{}, &meeting.InvalidConfigError{Field: "model_size", Value: opts.ModelSize}
	}

	modelPath := filepath.Join(t.cfg.ModelsDir, "ggml-"+opts.ModelSize+".bin")
	if _, err := os.Stat(modelPath); err != nil {
		return meeting.Transcript{}, &meeting.ModelUnavailableError{Model: opts.ModelSize, Cause: err}
	}

	language := opts.Language
	if language == "" {
		language = "auto"
	}

	outputPrefix := strings.TrimSuffix(audio.Path, filepath.Ext(audio.Path))

	t.logger.Info(ctx, "Starting transcription (model=%s, language=%s): %s",
		opts.ModelSize, language, audio.Path)

	// Whisper arguments
	// -m: Model path
	// -f: Input audio file
	// -oj: Output JSON with per-segment offsets
	// -l: Language ("auto" enables detection)
	// -t: Number of threads
	// --output-file: Output file prefix
	args := []string{
		"-m", modelPath,
		"-f", audio.Path,
		"-oj",
		"-l", language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return meeting.Transcript{}, &meeting.ModelUnavailableError{Model: opts.ModelSize, Cause: err}
	}

	jsonPath := outputPrefix + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return meeting.Transcript{}, fmt.Errorf("read whisper output: %w", err)
	}
	defer os.Remove(jsonPath)

	transcript, err := parseWhisperOutput(data)
	if err != nil {
		return meeting.Transcript{}, fmt.Errorf("parse whisper output: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, language=%s",
		len(transcript.Segments), transcript.Language)
	return transcript, nil
}

func validModelSize(size string) bool {
	for _, s := range config.ModelSizes {
		if s == size {
			return true
		}
	}
	return false
}
