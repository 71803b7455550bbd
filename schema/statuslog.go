package schema

import (
	"time"

	"github.com/google/uuid"
)

// StatusLog is the append-only audit trail of request status changes.
// Entries are never updated or deleted; the escalation monitor reads
// them to know how long a request has gone unattended.
type StatusLog struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID uuid.UUID     `json:"request_id" gorm:"type:uuid;index"`
	OldStatus RequestStatus `json:"old_status"`
	NewStatus RequestStatus `json:"new_status"`
	ChangedBy *uuid.UUID    `json:"changed_by" gorm:"type:uuid"`
	Notes     string        `json:"notes" gorm:"type:text"`
	CreatedAt time.Time     `json:"created_at"`
}
