package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Summary     SummaryConfig     `yaml:"summary"`
	Actions     ActionsConfig     `yaml:"actions"`
	Audio       AudioConfig       `yaml:"audio"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelsDir  string `yaml:"models_dir"`
	ModelSize  string `yaml:"model_size"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type SummaryConfig struct {
	Style  string `yaml:"style"`
	Prefix string `yaml:"prefix"`
	Model  string `yaml:"model"`
}

type ActionsConfig struct {
	UseModel *bool  `yaml:"use_model"`
	Model    string `yaml:"model"`
}

type AudioConfig struct {
	TargetSampleRate     int `yaml:"target_sample_rate"`
	LongAudioWarnMinutes int `yaml:"long_audio_warn_minutes"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// ModelSizes is the enumerated set of whisper accuracy/speed presets.
var ModelSizes = []string{"tiny", "base", "small", "medium"}

// SummaryStyles is the enumerated set of minutes verbosity presets. Unknown
// styles fall back to the first entry instead of failing.
var SummaryStyles = []string{"concise", "detailed", "action_focused", "executive"}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelsDir == "" {
		return fmt.Errorf("whisper.models_dir is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Whisper.ModelSize == "" {
		c.Whisper.ModelSize = "tiny"
	}
	if !contains(ModelSizes, c.Whisper.ModelSize) {
		return &meeting.InvalidConfigError{Field: "whisper.model_size", Value: c.Whisper.ModelSize}
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}

	// Unknown summary styles degrade to the default rather than failing.
	if !contains(SummaryStyles, c.Summary.Style) {
		c.Summary.Style = SummaryStyles[0]
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}
	if c.Actions.Model == "" {
		c.Actions.Model = c.Summary.Model
	}
	if c.Actions.UseModel == nil {
		t := true
		c.Actions.UseModel = &t
	}

	if c.Audio.TargetSampleRate == 0 {
		c.Audio.TargetSampleRate = 16000
	}
	if c.Audio.LongAudioWarnMinutes == 0 {
		c.Audio.LongAudioWarnMinutes = 30
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
