package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

func TestWriterWrite(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false, logger.New("error"))

	written, err := w.Write(context.Background(), sampleBundle(), Options{})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	wantFiles := []string{"transcript.txt", "minutes.md", "action_items.json", "minutes.docx"}
	if len(written) != len(wantFiles) {
		t.Fatalf("wrote %d files, want %d: %v", len(written), len(wantFiles), written)
	}
	for i, name := range wantFiles {
		if filepath.Base(written[i]) != name {
			t.Errorf("file %d = %s, want %s", i, filepath.Base(written[i]), name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "action_items.json"))
	if err != nil {
		t.Fatal(err)
	}
	var items []meeting.ActionItem
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("action_items.json invalid: %v", err)
	}
	if len(items) != 1 || items[0].Owner != "Bob" {
		t.Errorf("items = %+v", items)
	}

	md, err := os.ReadFile(filepath.Join(dir, "minutes.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(md), "- ") {
		t.Errorf("minutes.md = %q, want bullet lines", md)
	}
}

func TestWriterTimestampedFilenames(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, true, logger.New("error"))

	written, err := w.Write(context.Background(), sampleBundle(), Options{})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	for _, path := range written {
		base := filepath.Base(path)
		if base == "transcript.txt" || base == "minutes.md" || base == "action_items.json" {
			t.Errorf("filename %s not timestamped", base)
		}
	}
}

func TestWriterIncompleteBundle(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false, logger.New("error"))

	if _, err := w.Write(context.Background(), meeting.ResultBundle{}, Options{}); err != nil {
		t.Fatalf("Write() error = %v, incomplete bundle must still export", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "action_items.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("action_items.json = %q, want []", data)
	}
}
