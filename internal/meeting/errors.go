package meeting

import "fmt"

// UnsupportedFormatError is returned for audio containers the normalizer
// does not accept. Fatal.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported audio format %q (want mp3, wav or m4a)", e.Format)
}

// CorruptAudioError is returned when a supported container cannot be
// decoded. Fatal.
type CorruptAudioError struct {
	Path  string
	Cause error
}

func (e *CorruptAudioError) Error() string {
	return fmt.Sprintf("cannot decode audio %s: %v", e.Path, e.Cause)
}

func (e *CorruptAudioError) Unwrap() error { return e.Cause }

// InvalidConfigError is returned for configuration values outside their
// enumerated set. Fatal, detected before any stage runs.
type InvalidConfigError struct {
	Field string
	Value string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s=%q", e.Field, e.Value)
}

// ModelUnavailableError is returned when a backing model cannot be loaded.
// Fatal for the whole run when raised by the transcriber.
type ModelUnavailableError struct {
	Model string
	Cause error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model %s unavailable: %v", e.Model, e.Cause)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Cause }

// SummarizationError marks a failed minutes generation. Recovered by the
// orchestrator with an excerpt fallback; never aborts the run.
type SummarizationError struct {
	Cause error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed: %v", e.Cause)
}

func (e *SummarizationError) Unwrap() error { return e.Cause }

// ActionExtractionError marks a failed model-tier extraction. Recovered
// inside the extractor by the pattern-matching tier.
type ActionExtractionError struct {
	Cause error
}

func (e *ActionExtractionError) Error() string {
	return fmt.Sprintf("action extraction failed: %v", e.Cause)
}

func (e *ActionExtractionError) Unwrap() error { return e.Cause }
