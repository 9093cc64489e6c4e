package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// Options adjust the rendered representations.
type Options struct {
	// IncludeTimestamps prefixes each transcript line with [MM:SS].
	IncludeTimestamps bool
}

// ExportSet holds the three output representations of a bundle.
type ExportSet struct {
	TranscriptText  string
	MinutesMarkdown string
	ActionsJSON     []byte
}

// Format serializes a bundle into its three output representations. It is
// pure and total: missing or empty fields render as empty content, never
// as an error.
func Format(bundle meeting.ResultBundle, opts Options) ExportSet {
	return ExportSet{
		TranscriptText:  formatTranscript(bundle.Transcript, opts.IncludeTimestamps),
		MinutesMarkdown: formatMinutes(bundle.Minutes),
		ActionsJSON:     formatActions(bundle.Actions),
	}
}

func formatTranscript(t meeting.Transcript, timestamps bool) string {
	if !timestamps {
		return t.FullText()
	}

	lines := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		total := int(seg.Start / time.Second)
		lines = append(lines, fmt.Sprintf("[%02d:%02d] %s", total/60, total%60, strings.TrimSpace(seg.Text)))
	}
	return strings.Join(lines, "\n")
}

func formatMinutes(m meeting.Minutes) string {
	if len(m.Bullets) == 0 {
		return ""
	}

	var b strings.Builder
	for _, bullet := range m.Bullets {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}
	return b.String()
}

// formatActions renders the items as a JSON array with exactly the fields
// task, owner and deadline, in transcript order. A nil slice renders as [].
func formatActions(items []meeting.ActionItem) []byte {
	if items == nil {
		items = []meeting.ActionItem{}
	}
	// ActionItem has only the three exported fields, so marshalling cannot
	// fail for any bundle.
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return []byte("[]")
	}
	return data
}
