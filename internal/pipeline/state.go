package pipeline

// State tracks a run through the stage sequence. Failed is terminal and
// reachable from any non-terminal state on a fatal error.
type State string

const (
	StateUploaded         State = "uploaded"
	StateNormalized       State = "normalized"
	StateTranscribed      State = "transcribed"
	StateSummarized       State = "summarized"
	StateActionsExtracted State = "actions_extracted"
	StateAssembled        State = "assembled"
	StateDone             State = "done"
	StateFailed           State = "failed"
)
