package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

const extractPrompt = `You are an assistant that reads meeting transcripts and extracts action items.
Output ONLY a JSON array where each element is an object with the fields:
"task" (short action text), "owner" (person name, or null if unassigned),
"deadline" (date or time phrase, or null if none was stated).
If there are no action items, output an empty JSON array: [].

Transcript:
---
%s
---`

// modelItem tolerates the key variants small instruction models emit.
type modelItem struct {
	Task     string `json:"task"`
	Action   string `json:"action"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// extractModel prompts the model for a JSON array of action items and
// validates the response. Items without a non-empty task are discarded;
// missing owner/deadline fields get their documented defaults.
func (e *implExtractor) extractModel(ctx context.Context, transcript meeting.Transcript) ([]meeting.ActionItem, error) {
	prompt := fmt.Sprintf(extractPrompt, transcript.FullText())

	raw, err := e.generator.GenerateText(ctx, e.model, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := parseModelOutput(raw)
	if err != nil {
		return nil, err
	}

	var items []meeting.ActionItem
	for _, it := range parsed {
		task := strings.TrimSpace(it.Task)
		if task == "" {
			task = strings.TrimSpace(it.Action)
		}
		if task == "" {
			// Malformed record: never propagate an empty task.
			continue
		}

		owner := strings.TrimSpace(it.Owner)
		if owner == "" || strings.EqualFold(owner, "null") {
			owner = meeting.OwnerUnassigned
		}
		deadline := strings.TrimSpace(it.Deadline)
		if deadline == "" || strings.EqualFold(deadline, "null") {
			deadline = meeting.DeadlineUnspecified
		}

		items = append(items, meeting.ActionItem{Task: task, Owner: owner, Deadline: deadline})
	}

	return dedupe(items), nil
}

// parseModelOutput locates and decodes a JSON array in the model response,
// tolerating markdown code fences and surrounding prose.
func parseModelOutput(raw string) ([]modelItem, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model output")
	}

	var items []modelItem
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}
	return items, nil
}
