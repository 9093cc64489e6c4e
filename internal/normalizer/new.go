package normalizer

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

type implNormalizer struct {
	executor executor.Executor
	logger   logger.Logger
	tempDir  string
}

// New creates a Normalizer that shells out to ffprobe/ffmpeg and writes
// intermediate WAV files into tempDir.
func New(exec executor.Executor, log logger.Logger, tempDir string) Normalizer {
	return &implNormalizer{
		executor: exec,
		logger:   log,
		tempDir:  tempDir,
	}
}
