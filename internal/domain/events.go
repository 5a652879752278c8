package domain

// ImportTaskMessage is the queue payload that hands an import task to
// the worker.
type ImportTaskMessage struct {
	TaskID string `json:"task_id"`
}
