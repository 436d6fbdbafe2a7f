package task

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
)

// Action names the kind of activity a HistoryEntry records.
type Action string

const (
	ActionAssigned      Action = "assigned"
	ActionReassigned    Action = "reassigned"
	ActionStatusChanged Action = "status_changed"
)

// HistoryEntry is an immutable record of one assignment activity.
// From and To are nil when the action does not involve staff.
type HistoryEntry struct {
	action Action
	from   *kernel.UUID
	to     *kernel.UUID
	note   string
	at     time.Time
}

// NewHistoryEntry builds an entry; used when rebuilding tasks from storage.
func NewHistoryEntry(action Action, from, to *kernel.UUID, note string, at time.Time) HistoryEntry {
	return HistoryEntry{action: action, from: from, to: to, note: note, at: at}
}

func (h HistoryEntry) Action() Action { return h.action }
func (h HistoryEntry) From() *kernel.UUID { return h.from }
func (h HistoryEntry) To() *kernel.UUID { return h.to }
func (h HistoryEntry) Note() string { return h.note }
func (h HistoryEntry) At() time.Time { return h.at }

func ref(id kernel.UUID) *kernel.UUID {
	return &id
}
