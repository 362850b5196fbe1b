package constants

// JobStatus is the lifecycle state of an in-memory background job.
type JobStatus string

// Stable values (the polling API returns these exact strings).
const (
	JobStatusRunning  JobStatus = "running"   // worker still executing
	JobStatusDone     JobStatus = "done"      // terminal success, result available
	JobStatusError    JobStatus = "error"     // terminal failure, message set
	JobStatusNotFound JobStatus = "not_found" // id never registered (or lost on restart)
)

// Terminal reports whether a job in this status can no longer change.
func (s JobStatus) Terminal() bool {
	return s == JobStatusDone || s == JobStatusError
}

// WorkflowState is the manual processing state of an RMA line. The
// reconciler never writes these; they are set through the record store
// after an operator decision.
type WorkflowState string

const (
	StateNone        WorkflowState = ""
	StateRefunded    WorkflowState = "abonado"
	StateRepaired    WorkflowState = "reparado"
	StateNoAnomalies WorkflowState = "no_anomalias"
)

// ParseWorkflowState validates an incoming state string.
func ParseWorkflowState(s string) (WorkflowState, bool) {
	switch WorkflowState(s) {
	case StateNone, StateRefunded, StateRepaired, StateNoAnomalies:
		return WorkflowState(s), true
	}
	return StateNone, false
}
