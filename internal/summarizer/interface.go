package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Summarizer condenses a transcript into bullet-style meeting minutes.
type Summarizer interface {
	Summarize(ctx context.Context, transcript meeting.Transcript, style string) (meeting.Minutes, error)
}
