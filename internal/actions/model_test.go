package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func newTestExtractor(gen *fakeGenerator, useModel bool) Extractor {
	return New(config.ActionsConfig{UseModel: &useModel, Model: "test-model"}, gen, logger.New("error"))
}

func TestParseModelOutput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"plain array", `[{"task":"send report","owner":"Bob","deadline":"Friday"}]`, 1, false},
		{"code fence", "```json\n[{\"task\":\"send report\"}]\n```", 1, false},
		{"surrounding prose", `Here are the items: [{"task":"send report"}] hope that helps`, 1, false},
		{"empty array", `[]`, 0, false},
		{"not json", `not json`, 0, true},
		{"object not array", `{"task":"send report"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := parseModelOutput(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseModelOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(items) != tt.want {
				t.Errorf("got %d items, want %d", len(items), tt.want)
			}
		})
	}
}

func TestExtractModelValidation(t *testing.T) {
	gen := &fakeGenerator{response: `[
		{"task":"send the report","owner":"Bob","deadline":"Friday"},
		{"task":"","owner":"Alice","deadline":"Monday"},
		{"owner":"Carol"},
		{"task":"review numbers"}
	]`}
	ext := newTestExtractor(gen, true)

	tr := transcriptFrom("Bob: I'll send the report by Friday.")
	items, strategy, err := ext.Extract(context.Background(), tr)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if strategy != meeting.StrategyModel {
		t.Fatalf("strategy = %s, want model", strategy)
	}

	// records without a non-empty task are discarded
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(items), items)
	}
	if items[0].Task != "send the report" || items[0].Owner != "Bob" || items[0].Deadline != "Friday" {
		t.Errorf("unexpected first item %+v", items[0])
	}
	// missing owner/deadline default
	if items[1].Owner != meeting.OwnerUnassigned || items[1].Deadline != meeting.DeadlineUnspecified {
		t.Errorf("defaults not applied: %+v", items[1])
	}
}

func TestExtractFallsBackOnInvalidJSON(t *testing.T) {
	gen := &fakeGenerator{response: "not json"}
	ext := newTestExtractor(gen, true)

	tr := transcriptFrom("Bob: I'll prepare the draft by Friday.")
	items, strategy, err := ext.Extract(context.Background(), tr)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if strategy != meeting.StrategyPattern {
		t.Fatalf("strategy = %s, want pattern", strategy)
	}
	if len(items) != 1 || items[0].Owner != "Bob" {
		t.Errorf("fallback items = %+v", items)
	}
}

func TestExtractFallsBackOnModelError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model timeout")}
	ext := newTestExtractor(gen, true)

	tr := transcriptFrom("Carol: I'll review the contract next week.")
	items, strategy, err := ext.Extract(context.Background(), tr)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if strategy != meeting.StrategyPattern {
		t.Fatalf("strategy = %s, want pattern", strategy)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestExtractFallsBackOnZeroValidItems(t *testing.T) {
	// parseable but all records malformed: non-empty transcript must still
	// yield pattern-tier items
	gen := &fakeGenerator{response: `[{"owner":"Bob"},{"task":""}]`}
	ext := newTestExtractor(gen, true)

	tr := transcriptFrom("Bob: I'll send the minutes tomorrow.")
	items, strategy, err := ext.Extract(context.Background(), tr)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if strategy != meeting.StrategyPattern {
		t.Fatalf("strategy = %s, want pattern", strategy)
	}
	if len(items) == 0 {
		t.Error("expected pattern-tier items")
	}
}

func TestExtractModelDisabled(t *testing.T) {
	gen := &fakeGenerator{response: `[{"task":"should not be used"}]`}
	ext := newTestExtractor(gen, false)

	tr := transcriptFrom("Bob: I'll update the roadmap.")
	items, strategy, err := ext.Extract(context.Background(), tr)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if strategy != meeting.StrategyPattern {
		t.Fatalf("strategy = %s, want pattern", strategy)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times with model disabled", gen.calls)
	}
	if len(items) != 1 || items[0].Task != "update the roadmap" {
		t.Errorf("items = %+v", items)
	}
}

func TestExtractEmptyTranscript(t *testing.T) {
	gen := &fakeGenerator{}
	ext := newTestExtractor(gen, true)

	items, _, err := ext.Extract(context.Background(), meeting.Transcript{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items from empty transcript, want 0", len(items))
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for empty transcript", gen.calls)
	}
}
