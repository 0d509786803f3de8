package dto

import "github.com/recoleta-app/collector-api/internal/models"

// AdvanceResponse reports the outcome of a lifecycle advance call.
type AdvanceResponse struct {
	RequestID       int64                 `json:"requestId"`
	State           models.LifecycleState `json:"state"`
	Changed         bool                  `json:"changed"`
	EntryRegistered bool                  `json:"entryRegistered"`
}

// LifecycleLogResponse lists the session audit entries for a collector.
type LifecycleLogResponse struct {
	Entries []models.LifecycleEntry `json:"entries"`
}
