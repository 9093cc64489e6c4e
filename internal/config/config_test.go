package config

import (
	"errors"
	"os"
	"testing"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
					ModelSize:  "tiny",
				},
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing binary path",
			config: Config{
				Whisper: WhisperConfig{
					ModelsDir: "models",
				},
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
				},
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateModelSize(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelsDir:  "models",
			ModelSize:  "gigantic",
		},
		Paths: PathsConfig{Output: "data/output"},
	}

	err := cfg.Validate()
	var invalidErr *meeting.InvalidConfigError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("Validate() error = %v, want InvalidConfigError", err)
	}
	if invalidErr.Field != "whisper.model_size" {
		t.Errorf("Field = %q, want whisper.model_size", invalidErr.Field)
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelsDir:  "models",
		},
		Summary: SummaryConfig{Style: "poetic"},
		Paths:   PathsConfig{Output: "data/output"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	// unknown summary style silently defaults instead of failing
	if cfg.Summary.Style != "concise" {
		t.Errorf("Summary.Style = %q, want concise", cfg.Summary.Style)
	}
	if cfg.Whisper.ModelSize != "tiny" {
		t.Errorf("Whisper.ModelSize = %q, want tiny", cfg.Whisper.ModelSize)
	}
	if cfg.Whisper.Language != "auto" {
		t.Errorf("Whisper.Language = %q, want auto", cfg.Whisper.Language)
	}
	if cfg.Audio.TargetSampleRate != 16000 {
		t.Errorf("Audio.TargetSampleRate = %d, want 16000", cfg.Audio.TargetSampleRate)
	}
	if cfg.Actions.UseModel == nil || !*cfg.Actions.UseModel {
		t.Error("Actions.UseModel should default to true")
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper-cli"
  models_dir: "models"
  model_size: "base"
  language: "en"

summary:
  style: "detailed"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelSize != "base" {
		t.Errorf("ModelSize = %v, want %v", cfg.Whisper.ModelSize, "base")
	}
	if cfg.Summary.Style != "detailed" {
		t.Errorf("Style = %v, want %v", cfg.Summary.Style, "detailed")
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
