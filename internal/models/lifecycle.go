package models

import "time"

// LifecycleState is the local acceptance progression a collector drives for a
// request. It is session-scoped and distinct from the backend status field.
type LifecycleState string

const (
	LifecyclePending    LifecycleState = "Pendente"
	LifecycleConfirmed  LifecycleState = "Confirmado"
	LifecycleInProgress LifecycleState = "Em andamento"
)

// Next returns the state an advance call moves to. The second return is false
// on the terminal state, where advancing is a no-op.
func (s LifecycleState) Next() (LifecycleState, bool) {
	switch s {
	case LifecyclePending:
		return LifecycleConfirmed, true
	case LifecycleConfirmed:
		return LifecycleInProgress, true
	default:
		return s, false
	}
}

// ActionLabel describes the transition into a state for the audit log.
func (s LifecycleState) ActionLabel() string {
	switch s {
	case LifecycleConfirmed:
		return "Pedido confirmado"
	case LifecycleInProgress:
		return "Coleta em andamento"
	default:
		return "Pedido pendente"
	}
}

// LifecycleEntry is one append-only audit record. At most one entry exists
// per request id within a session.
type LifecycleEntry struct {
	ID          string    `json:"id"`
	RequestID   int64     `json:"requestId"`
	ActorName   string    `json:"actorName"`
	ActionLabel string    `json:"actionLabel"`
	Timestamp   time.Time `json:"timestamp"`
}
