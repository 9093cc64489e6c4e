package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Request is one pipeline invocation: an audio file plus the user-chosen
// configuration.
type Request struct {
	AudioPath string
	ModelSize string
	Language  string
	Style     string
}

// Pipeline orchestrates normalization, transcription, summarization and
// action extraction into a single ResultBundle.
type Pipeline interface {
	Run(ctx context.Context, req Request) (*meeting.ResultBundle, error)
}
