package normalizer

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Normalizer converts an uploaded recording into the canonical mono PCM WAV
// the transcriber consumes. The source file is never modified.
type Normalizer interface {
	Probe(ctx context.Context, path string) (meeting.AudioAsset, error)
	Normalize(ctx context.Context, asset meeting.AudioAsset, targetRate int) (meeting.NormalizedAudio, error)
}
