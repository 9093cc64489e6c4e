package actions

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

type implExtractor struct {
	generator llm.Generator
	logger    logger.Logger
	model     string
	useModel  bool
}

// New creates an Extractor. The generator may be nil, in which case only
// the pattern-matching tier runs.
func New(cfg config.ActionsConfig, gen llm.Generator, log logger.Logger) Extractor {
	useModel := cfg.UseModel == nil || *cfg.UseModel
	return &implExtractor{
		generator: gen,
		logger:    log,
		model:     cfg.Model,
		useModel:  useModel,
	}
}

// resolveStrategy picks the extraction tier to try first. The contract of
// Extract is identical regardless of the path taken.
func resolveStrategy(useModel bool, gen llm.Generator) meeting.Strategy {
	if useModel && gen != nil {
		return meeting.StrategyModel
	}
	return meeting.StrategyPattern
}
