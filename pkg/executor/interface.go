package executor

import "context"

// Executor defines the interface for executing external commands
// (ffmpeg, ffprobe, whisper-cli).
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// LookPath reports whether the named binary is resolvable, without
	// running it.
	LookPath(name string) error
}
