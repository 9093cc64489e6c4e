package actions

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Extractor derives structured action items from a transcript. The returned
// strategy reports which tier produced the items: the model tier, or the
// deterministic pattern-matching fallback.
type Extractor interface {
	Extract(ctx context.Context, transcript meeting.Transcript) ([]meeting.ActionItem, meeting.Strategy, error)
}
