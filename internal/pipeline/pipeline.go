package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/minutes-flow/internal/actions"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

const excerptFallbackBullets = 5

// run carries the per-invocation state machine.
type run struct {
	id    string
	state State
	log   logger.Logger
}

func (r *run) advance(ctx context.Context, next State) {
	r.log.Debug(ctx, "State: %s -> %s", r.state, next)
	r.state = next
}

func (r *run) fail(ctx context.Context, stage string, err error) error {
	r.advance(ctx, StateFailed)
	r.log.Error(ctx, "Stage %s failed: %v", stage, err)
	return fmt.Errorf("%s: %w", stage, err)
}

// Run executes one pipeline invocation. Normalizer and transcriber errors
// are fatal: without a transcript nothing downstream can run. Summarization
// failures are absorbed with the excerpt fallback and marked on the
// bundle's Degraded list; model extraction failures are absorbed inside the
// extractor by its deterministic tier. Model calls are never retried within
// a run.
func (p *implPipeline) Run(ctx context.Context, req Request) (*meeting.ResultBundle, error) {
	id := uuid.NewString()
	r := &run{id: id, state: StateUploaded, log: p.logger.WithTag(id[:8])}
	startTime := time.Now()

	r.log.Info(ctx, "Starting pipeline run: %s", req.AudioPath)

	asset, err := p.normalizer.Probe(ctx, req.AudioPath)
	if err != nil {
		return nil, r.fail(ctx, "probe", err)
	}

	warnAfter := time.Duration(p.cfg.Audio.LongAudioWarnMinutes) * time.Minute
	if asset.Duration > warnAfter {
		r.log.Warn(ctx, "Audio is %s long (over %s): expect higher latency and memory use",
			asset.Duration.Round(time.Second), warnAfter)
	}

	audio, err := p.normalizer.Normalize(ctx, asset, p.cfg.Audio.TargetSampleRate)
	if err != nil {
		return nil, r.fail(ctx, "normalize", err)
	}
	r.advance(ctx, StateNormalized)
	defer p.cleanupTempFile(ctx, audio.Path)

	opts := transcriber.Options{ModelSize: req.ModelSize, Language: req.Language}
	if opts.ModelSize == "" {
		opts.ModelSize = p.cfg.Whisper.ModelSize
	}
	if opts.Language == "" {
		opts.Language = p.cfg.Whisper.Language
	}

	transcript, err := p.transcriber.Transcribe(ctx, audio, opts)
	if err != nil {
		return nil, r.fail(ctx, "transcribe", err)
	}
	r.advance(ctx, StateTranscribed)
	r.log.Info(ctx, "Transcript ready: %d segments, language=%s", len(transcript.Segments), transcript.Language)

	// Summarizer and extractor both only read the immutable transcript, so
	// the two branches run concurrently. A failure in one never blocks the
	// other.
	var (
		wg       sync.WaitGroup
		minutes  meeting.Minutes
		sumErr   error
		items    []meeting.ActionItem
		strategy meeting.Strategy
		extErr   error
	)

	style := req.Style
	if style == "" {
		style = p.cfg.Summary.Style
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		minutes, sumErr = p.summarizer.Summarize(ctx, transcript, style)
	}()
	go func() {
		defer wg.Done()
		items, strategy, extErr = p.extractor.Extract(ctx, transcript)
	}()
	wg.Wait()

	var degraded []string

	if sumErr != nil {
		r.log.Warn(ctx, "Summarization failed, substituting transcript excerpt: %v", sumErr)
		minutes = summarizer.ExcerptFallback(transcript, excerptFallbackBullets)
		degraded = append(degraded, "summarizer")
	}
	r.advance(ctx, StateSummarized)

	if extErr != nil {
		// The extractor absorbs model failures itself; anything surfacing
		// here still degrades to the deterministic tier rather than aborting.
		r.log.Warn(ctx, "Action extraction error, using pattern tier directly: %v", extErr)
		items = actions.ExtractPattern(transcript)
		strategy = meeting.StrategyPattern
		degraded = append(degraded, "actions")
	}
	r.advance(ctx, StateActionsExtracted)

	bundle := &meeting.ResultBundle{
		RunID:      id,
		Transcript: transcript,
		Minutes:    minutes,
		Actions:    items,
		Strategy:   strategy,
		Degraded:   degraded,
	}
	r.advance(ctx, StateAssembled)

	r.log.Info(ctx, "Pipeline run assembled in %s: %d bullets, %d action items (strategy=%s)",
		time.Since(startTime).Round(time.Millisecond), len(minutes.Bullets), len(items), strategy)

	r.advance(ctx, StateDone)
	return bundle, nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
