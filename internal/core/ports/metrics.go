package ports

import "time"

// SyncOutcome labels the result of one status synchronization.
type SyncOutcome string

const (
	SyncChanged   SyncOutcome = "changed"
	SyncUnchanged SyncOutcome = "unchanged"
	SyncSkipped   SyncOutcome = "skipped"
	SyncFailed    SyncOutcome = "failed"
)

// WorkflowMetrics records operational counters of the task workflow.
type WorkflowMetrics interface {
	// EventPublished counts a TaskSaved event for stage.
	EventPublished(stage string)
	// SyncFinished counts one status synchronization by policy and outcome.
	SyncFinished(policy string, outcome SyncOutcome)
	// ResyncCompleted records one periodic resync pass.
	ResyncCompleted(duration time.Duration, orders, failures int)
}
