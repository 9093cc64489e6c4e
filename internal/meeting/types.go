package meeting

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// AudioAsset is the uploaded meeting recording before normalization.
type AudioAsset struct {
	Path     string
	Format   string // container extension without the dot: mp3, wav, m4a
	Duration time.Duration
}

// NormalizedAudio is the mono PCM representation consumed by the transcriber.
// Path points at a temporary WAV file that is removed after transcription.
type NormalizedAudio struct {
	Path       string
	SampleRate int
	Duration   time.Duration
}

// Segment is one time-bounded span of transcript text.
// Text keeps the raw transcribed text (speaker label included when the
// recording carries one) so that concatenating segments reconstructs the
// full transcript.
type Segment struct {
	Start   time.Duration
	End     time.Duration
	Speaker string
	Text    string
}

var speakerLabelRe = regexp.MustCompile(`^([A-Z][\w'\-]*):\s*(.+)$`)

// ParseSpeaker extracts a leading "Name:" label from raw segment text.
// Returns the label and the remaining utterance, or "" and the input
// unchanged when no label is present.
func ParseSpeaker(text string) (speaker, utterance string) {
	if m := speakerLabelRe.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		return m[1], m[2]
	}
	return "", strings.TrimSpace(text)
}

// Utterance returns the segment text without its speaker label.
func (s Segment) Utterance() string {
	_, u := ParseSpeaker(s.Text)
	return u
}

// Transcript is the ordered, read-only output of the transcriber, shared by
// the summarizer and the action extractor.
type Transcript struct {
	Language string
	Segments []Segment
}

// Empty reports whether the transcript carries no spoken text.
func (t Transcript) Empty() bool {
	for _, s := range t.Segments {
		if strings.TrimSpace(s.Text) != "" {
			return false
		}
	}
	return true
}

// FullText reconstructs the transcript by concatenating segment texts in
// order, one line per segment.
func (t Transcript) FullText() string {
	lines := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		lines = append(lines, strings.TrimSpace(s.Text))
	}
	return strings.Join(lines, "\n")
}

// Validate checks that segments are time-ordered and non-overlapping.
func (t Transcript) Validate() error {
	for i, s := range t.Segments {
		if s.End < s.Start {
			return fmt.Errorf("segment %d: end %s before start %s", i, s.End, s.Start)
		}
		if i > 0 && s.Start < t.Segments[i-1].End {
			return fmt.Errorf("segment %d: starts at %s before previous segment ends at %s",
				i, s.Start, t.Segments[i-1].End)
		}
	}
	return nil
}

// Minutes is the condensed bullet-point summary of a transcript.
type Minutes struct {
	Style   string
	Bullets []string
}

// Default values for action item fields the extractor could not determine.
const (
	OwnerUnassigned     = "Unassigned"
	DeadlineUnspecified = "Unspecified"
)

// ActionItem is one {task, owner, deadline} record extracted from
// commitments in the transcript. Task is never empty.
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// Extraction strategies, tagged on the bundle so callers can tell which
// tier produced the action items.
type Strategy string

const (
	StrategyModel   Strategy = "model"
	StrategyPattern Strategy = "pattern"
)

// ResultBundle aggregates everything one pipeline run produced. It is
// assembled once and never mutated afterwards.
type ResultBundle struct {
	RunID      string
	Transcript Transcript
	Minutes    Minutes
	Actions    []ActionItem
	Strategy   Strategy
	// Degraded lists stages that recovered through a fallback instead of
	// completing normally, e.g. "summarizer".
	Degraded []string
}
