package summarizer

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
	calls    int
}

func (f *fakeGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.response, f.err
}

func testTranscript() meeting.Transcript {
	return meeting.Transcript{
		Language: "en",
		Segments: []meeting.Segment{
			{Start: 0, End: 5 * time.Second, Speaker: "Alice", Text: "Alice: Welcome to the Q3 planning meeting."},
			{Start: 5 * time.Second, End: 10 * time.Second, Speaker: "Bob", Text: "Bob: I'll prepare the budget draft by Friday."},
		},
	}
}

func newTestSummarizer(gen *fakeGenerator, prefix string) Summarizer {
	cfg := config.SummaryConfig{Model: "test-model", Prefix: prefix}
	return New(cfg, gen, logger.New("error"))
}

func TestSummarize(t *testing.T) {
	gen := &fakeGenerator{response: "- Q3 planning kicked off\n- Bob owns the budget draft, due Friday\n"}
	s := newTestSummarizer(gen, "")

	minutes, err := s.Summarize(context.Background(), testTranscript(), "concise")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	want := []string{"Q3 planning kicked off", "Bob owns the budget draft, due Friday"}
	if !reflect.DeepEqual(minutes.Bullets, want) {
		t.Errorf("Bullets = %v, want %v", minutes.Bullets, want)
	}
	if minutes.Style != "concise" {
		t.Errorf("Style = %q, want concise", minutes.Style)
	}
}

func TestSummarizeUnknownStyleDefaults(t *testing.T) {
	gen := &fakeGenerator{response: "- a bullet"}
	s := newTestSummarizer(gen, "")

	minutes, err := s.Summarize(context.Background(), testTranscript(), "poetic")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if minutes.Style != "concise" {
		t.Errorf("Style = %q, want concise fallback", minutes.Style)
	}
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	gen := &fakeGenerator{response: "- should not be called"}
	s := newTestSummarizer(gen, "")

	minutes, err := s.Summarize(context.Background(), meeting.Transcript{}, "concise")
	if err != nil {
		t.Fatalf("Summarize() error = %v, empty transcript must not fail", err)
	}
	if len(minutes.Bullets) != 0 {
		t.Errorf("got %d bullets, want 0", len(minutes.Bullets))
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for empty transcript", gen.calls)
	}
}

func TestSummarizeModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("deadline exceeded")}
	s := newTestSummarizer(gen, "")

	_, err := s.Summarize(context.Background(), testTranscript(), "concise")

	var sumErr *meeting.SummarizationError
	if !errors.As(err, &sumErr) {
		t.Fatalf("error = %v, want SummarizationError", err)
	}
}

func TestSummarizeNoBullets(t *testing.T) {
	gen := &fakeGenerator{response: "   \n\n"}
	s := newTestSummarizer(gen, "")

	_, err := s.Summarize(context.Background(), testTranscript(), "concise")

	var sumErr *meeting.SummarizationError
	if !errors.As(err, &sumErr) {
		t.Fatalf("error = %v, want SummarizationError", err)
	}
}

func TestSummarizePrefix(t *testing.T) {
	gen := &fakeGenerator{response: "- first topic"}
	s := newTestSummarizer(gen, "Weekly Sync")

	minutes, err := s.Summarize(context.Background(), testTranscript(), "concise")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(minutes.Bullets) != 2 || minutes.Bullets[0] != "Weekly Sync" {
		t.Errorf("Bullets = %v, want prefix first", minutes.Bullets)
	}
}

func TestParseBullets(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"dashes", "- one\n- two", []string{"one", "two"}},
		{"stars", "* one\n* two", []string{"one", "two"}},
		{"dots", "• one\n• two", []string{"one", "two"}},
		{"plain lines kept", "one\ntwo", []string{"one", "two"}},
		{"blank and rules skipped", "- one\n\n---\n- two", []string{"one", "two"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseBullets(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseBullets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExcerptFallback(t *testing.T) {
	tr := testTranscript()

	minutes := ExcerptFallback(tr, 5)
	if len(minutes.Bullets) != 2 {
		t.Fatalf("got %d bullets, want 2", len(minutes.Bullets))
	}
	if minutes.Style != "excerpt" {
		t.Errorf("Style = %q, want excerpt", minutes.Style)
	}

	// deterministic and capped
	if !reflect.DeepEqual(minutes, ExcerptFallback(tr, 5)) {
		t.Error("ExcerptFallback is not deterministic")
	}
	if got := ExcerptFallback(tr, 1); len(got.Bullets) != 1 {
		t.Errorf("got %d bullets with cap 1", len(got.Bullets))
	}
	if got := ExcerptFallback(meeting.Transcript{}, 5); len(got.Bullets) != 0 {
		t.Errorf("got %d bullets from empty transcript", len(got.Bullets))
	}
}
