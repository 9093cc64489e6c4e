package actions

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Extract runs the model tier when configured and falls through to the
// deterministic pattern tier when the model call fails, its output cannot
// be parsed, or it yields zero valid items from a non-empty transcript.
// The fallback never fails, so a usable (possibly empty) item list is
// always returned.
func (e *implExtractor) Extract(ctx context.Context, transcript meeting.Transcript) ([]meeting.ActionItem, meeting.Strategy, error) {
	if transcript.Empty() {
		return nil, meeting.StrategyPattern, nil
	}

	strategy := resolveStrategy(e.useModel, e.generator)
	if strategy == meeting.StrategyModel {
		items, err := e.extractModel(ctx, transcript)
		if err != nil {
			extractErr := &meeting.ActionExtractionError{Cause: err}
			e.logger.Warn(ctx, "Model extraction failed, using pattern fallback: %v", extractErr)
		} else if len(items) > 0 {
			e.logger.Info(ctx, "Action items extracted by model: %d", len(items))
			return items, meeting.StrategyModel, nil
		} else {
			e.logger.Warn(ctx, "Model returned zero valid action items, using pattern fallback")
		}
	}

	items := ExtractPattern(transcript)
	e.logger.Info(ctx, "Action items extracted by pattern fallback: %d", len(items))
	return items, meeting.StrategyPattern, nil
}
