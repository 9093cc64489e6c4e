package pipeline

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/actions"
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/normalizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	normalizer  normalizer.Normalizer
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	extractor   actions.Extractor
	logger      logger.Logger
}

// New wires the pipeline stages together. The orchestrator is the only
// component with cross-stage knowledge.
func New(
	cfg *config.Config,
	norm normalizer.Normalizer,
	trans transcriber.Transcriber,
	sum summarizer.Summarizer,
	ext actions.Extractor,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		normalizer:  norm,
		transcriber: trans,
		summarizer:  sum,
		extractor:   ext,
		logger:      log,
	}
}
