package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/minutes-flow/internal/actions"
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/export"
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/normalizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
	"github.com/nguyentantai21042004/minutes-flow/internal/watcher"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to YAML config")
		audioFile  = flag.String("file", "", "meeting audio file to process (mp3, wav or m4a)")
		modelSize  = flag.String("model", "", "whisper model size override (tiny|base|small|medium)")
		language   = flag.String("lang", "", "language hint override (ISO code or \"auto\")")
		style      = flag.String("style", "", "summary style override (concise|detailed|action_focused|executive)")
		watchMode  = flag.Bool("watch", false, "watch the input directory for new recordings")
		timestamps = flag.Bool("timestamps", false, "include [MM:SS] timestamps in transcript.txt")
	)
	flag.Parse()

	ctx := context.Background()

	// .env is optional; real deployments export the keys directly
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Minutes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Whisper model: %s, language: %s", cfg.Whisper.ModelSize, cfg.Whisper.Language)
	log.Info(ctx, "Summary style: %s", cfg.Summary.Style)

	gen := buildGenerator(ctx, log)
	exec := executor.New()

	for _, bin := range []string{"ffmpeg", "ffprobe"} {
		if err := exec.LookPath(bin); err != nil {
			log.Error(ctx, "Required binary missing: %v", err)
			os.Exit(1)
		}
	}

	norm := normalizer.New(exec, log, cfg.Paths.Temp)
	trans := transcriber.New(cfg.Whisper, exec, log)
	sum := summarizer.New(cfg.Summary, gen, log)
	ext := actions.New(cfg.Actions, gen, log)
	pipe := pipeline.New(cfg, norm, trans, sum, ext, log)
	writer := export.NewWriter(cfg.Paths.Output, *watchMode, log)

	exportOpts := export.Options{IncludeTimestamps: *timestamps}

	runOne := func(ctx context.Context, path string) error {
		bundle, err := pipe.Run(ctx, pipeline.Request{
			AudioPath: path,
			ModelSize: *modelSize,
			Language:  *language,
			Style:     *style,
		})
		if err != nil {
			return err
		}

		written, err := writer.Write(ctx, *bundle, exportOpts)
		if err != nil {
			return err
		}
		for _, p := range written {
			log.Info(ctx, "Output: %s", p)
		}
		return nil
	}

	if *watchMode {
		runWatch(ctx, cfg, runOne, log)
		return
	}

	if *audioFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: pipeline -file <audio> [-config config.yaml] or pipeline -watch")
		os.Exit(1)
	}

	if err := runOne(ctx, *audioFile); err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		os.Exit(1)
	}
}

// buildGenerator creates the Gemini backend from GEMINI_API_KEYS. With no
// keys the pipeline still runs: minutes degrade to the transcript excerpt
// and action items come from the pattern tier.
func buildGenerator(ctx context.Context, log logger.Logger) llm.Generator {
	keys := splitKeys(os.Getenv("GEMINI_API_KEYS"))
	if len(keys) == 0 {
		keys = splitKeys(os.Getenv("GEMINI_API_KEY"))
	}

	if len(keys) == 0 {
		log.Warn(ctx, "No GEMINI_API_KEYS set: summarization and model extraction will use fallbacks")
		return nil
	}

	gen, err := llm.NewGemini(keys, log)
	if err != nil {
		log.Warn(ctx, "Gemini backend unavailable: %v", err)
		return nil
	}
	return gen
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func runWatch(ctx context.Context, cfg *config.Config, handler watcher.EventHandler, log logger.Logger) {
	if cfg.Paths.Input == "" {
		log.Error(ctx, "paths.input is required for watch mode")
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new recordings. Press Ctrl+C to stop", cfg.Paths.Input)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}
