package domain

// WorkStatus is the lifecycle state of a construction work.
type WorkStatus string

const (
	WorkStatusAssigned   WorkStatus = "assigned"
	WorkStatusInProgress WorkStatus = "in_progress"
	WorkStatusCompleted  WorkStatus = "completed"
	WorkStatusCancelled  WorkStatus = "cancelled"
)

// Work is the construction-job aggregate. Only its status is relevant to the
// finance engine: the first materials expense promotes an assigned work to in
// progress inside the same unit of work as the expense itself.
type Work struct {
	WorkID string     `json:"workID"`
	Name   string     `json:"name"`
	Status WorkStatus `json:"status"`
	AuditFields
}
