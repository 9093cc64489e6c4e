package normalizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// supportedFormats are the audio containers the pipeline accepts.
var supportedFormats = map[string]bool{
	"mp3": true,
	"wav": true,
	"m4a": true,
}

// Probe validates the container format and reads the recording's duration
// via ffprobe. An extension outside the supported set fails before any
// decoding work; a supported container that ffprobe cannot decode is
// reported as corrupt.
func (n *implNormalizer) Probe(ctx context.Context, path string) (meeting.AudioAsset, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supportedFormats[format] {
		return meeting.AudioAsset{}, &meeting.UnsupportedFormatError{Format: format}
	}

	if _, err := os.Stat(path); err != nil {
		return meeting.AudioAsset{}, fmt.Errorf("stat audio file: %w", err)
	}

	// ffprobe prints the container duration in seconds on stdout
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := n.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return meeting.AudioAsset{}, &meeting.CorruptAudioError{Path: path, Cause: err}
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return meeting.AudioAsset{}, &meeting.CorruptAudioError{
			Path:  path,
			Cause: fmt.Errorf("unreadable duration %q", strings.TrimSpace(out)),
		}
	}

	asset := meeting.AudioAsset{
		Path:     path,
		Format:   format,
		Duration: time.Duration(seconds * float64(time.Second)),
	}

	n.logger.Debug(ctx, "Probed %s: format=%s duration=%s", path, format, asset.Duration)
	return asset, nil
}

// Normalize resamples and downmixes the asset to mono PCM WAV at targetRate.
func (n *implNormalizer) Normalize(ctx context.Context, asset meeting.AudioAsset, targetRate int) (meeting.NormalizedAudio, error) {
	if err := os.MkdirAll(n.tempDir, 0755); err != nil {
		return meeting.NormalizedAudio{}, fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(asset.Path), filepath.Ext(asset.Path))
	wavPath := filepath.Join(n.tempDir, base+"_norm.wav")

	n.logger.Info(ctx, "Normalizing audio: %s -> %s (%d Hz mono)", asset.Path, wavPath, targetRate)

	// FFmpeg arguments for audio normalization
	// -i: Input audio
	// -vn: No video stream
	// -ar: Target sample rate
	// -ac 1: Mono channel
	// -c:a pcm_s16le: PCM 16-bit little-endian (uncompressed)
	// -y: Overwrite output file if exists
	args := []string{
		"-i", asset.Path,
		"-vn",
		"-ar", strconv.Itoa(targetRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := n.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return meeting.NormalizedAudio{}, &meeting.CorruptAudioError{Path: asset.Path, Cause: err}
	}

	n.logger.Info(ctx, "Audio normalized successfully: %s", wavPath)
	return meeting.NormalizedAudio{
		Path:       wavPath,
		SampleRate: targetRate,
		Duration:   asset.Duration,
	}, nil
}
