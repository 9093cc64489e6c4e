package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Options select the accuracy/speed trade-off and an optional language hint.
type Options struct {
	// ModelSize must be one of config.ModelSizes.
	ModelSize string
	// Language is an ISO code or "auto" for detection.
	Language string
}

// Transcriber runs speech-to-text over normalized audio.
type Transcriber interface {
	Transcribe(ctx context.Context, audio meeting.NormalizedAudio, opts Options) (meeting.Transcript, error)
}
