package summarizer

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implSummarizer struct {
	generator llm.Generator
	logger    logger.Logger
	model     string
	prefix    string
}

// New creates a Summarizer backed by the given text generator.
func New(cfg config.SummaryConfig, gen llm.Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator: gen,
		logger:    log,
		model:     cfg.Model,
		prefix:    cfg.Prefix,
	}
}
