package transcriber

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// whisperOutput mirrors the JSON whisper-cli writes with -oj.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []whisperSegment `json:"transcription"`
}

type whisperSegment struct {
	Offsets struct {
		From int64 `json:"from"` // milliseconds
		To   int64 `json:"to"`
	} `json:"offsets"`
	Text string `json:"text"`
}

// parseWhisperOutput converts whisper-cli JSON into a Transcript. Segments
// with empty text (silence, non-speech events) are skipped; speaker labels
// of the form "Name:" are recognized but the raw text is preserved so
// concatenating segments reconstructs the transcript.
func parseWhisperOutput(data []byte) (meeting.Transcript, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return meeting.Transcript{}, err
	}

	transcript := meeting.Transcript{Language: out.Result.Language}
	for _, ws := range out.Transcription {
		text := strings.TrimSpace(ws.Text)
		if text == "" {
			continue
		}

		speaker, _ := meeting.ParseSpeaker(text)
		transcript.Segments = append(transcript.Segments, meeting.Segment{
			Start:   time.Duration(ws.Offsets.From) * time.Millisecond,
			End:     time.Duration(ws.Offsets.To) * time.Millisecond,
			Speaker: speaker,
			Text:    text,
		})
	}

	if err := transcript.Validate(); err != nil {
		return meeting.Transcript{}, err
	}
	return transcript, nil
}
