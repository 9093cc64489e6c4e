package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

const summaryPrompt = `You are an assistant that writes meeting minutes from a transcript.
%s
Return ONLY a markdown bullet list, one bullet per line starting with "- ".
Each bullet summarizes one topical unit of the meeting, in the order topics
were discussed. Do not add headings, preamble or closing remarks.

Transcript:
---
%s
---`

// stylePrompts adjust the verbosity of the generated minutes. Unknown
// styles resolve to concise instead of failing.
var stylePrompts = map[string]string{
	"concise":        "Write short, telegraphic bullets. At most one line each, at most 10 bullets total.",
	"detailed":       "Write thorough bullets covering every topic, decision and open point discussed.",
	"action_focused": "Focus the bullets on decisions made and work that was committed to, naming who committed where stated.",
	"executive":      "Write at most 4 high-level bullets suitable for an executive summary.",
}

// Summarize condenses the transcript into bullet-style minutes. An empty
// transcript yields empty Minutes with no error.
func (s *implSummarizer) Summarize(ctx context.Context, transcript meeting.Transcript, style string) (meeting.Minutes, error) {
	style = resolveStyle(style)
	if transcript.Empty() {
		return meeting.Minutes{Style: style}, nil
	}

	if s.generator == nil {
		return meeting.Minutes{}, &meeting.SummarizationError{
			Cause: fmt.Errorf("no model backend configured"),
		}
	}

	prompt := fmt.Sprintf(summaryPrompt, stylePrompts[style], transcript.FullText())

	raw, err := s.generator.GenerateText(ctx, s.model, prompt)
	if err != nil {
		return meeting.Minutes{}, &meeting.SummarizationError{Cause: err}
	}

	bullets := parseBullets(raw)
	if len(bullets) == 0 {
		return meeting.Minutes{}, &meeting.SummarizationError{
			Cause: fmt.Errorf("model returned no bullets"),
		}
	}

	if s.prefix != "" {
		bullets = append([]string{s.prefix}, bullets...)
	}

	s.logger.Info(ctx, "Minutes generated: %d bullets (style=%s)", len(bullets), style)
	return meeting.Minutes{Style: style, Bullets: bullets}, nil
}

func resolveStyle(style string) string {
	if _, ok := stylePrompts[style]; ok {
		return style
	}
	return "concise"
}

// parseBullets extracts bullet lines from model output, tolerating "-",
// "*" and "•" markers; plain non-empty lines are kept as bullets too so a
// model that ignores the list instruction still yields usable minutes.
func parseBullets(raw string) []string {
	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "---" {
			continue
		}
		for _, marker := range []string{"- ", "* ", "• "} {
			if strings.HasPrefix(line, marker) {
				line = strings.TrimSpace(strings.TrimPrefix(line, marker))
				break
			}
		}
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// ExcerptFallback builds deterministic minutes from the transcript's
// leading segments. Used by the orchestrator when summarization fails so
// the run continues with degraded rather than missing minutes.
func ExcerptFallback(transcript meeting.Transcript, maxBullets int) meeting.Minutes {
	if maxBullets <= 0 {
		maxBullets = 5
	}

	minutes := meeting.Minutes{Style: "excerpt"}
	for _, seg := range transcript.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		minutes.Bullets = append(minutes.Bullets, text)
		if len(minutes.Bullets) == maxBullets {
			break
		}
	}
	return minutes
}
