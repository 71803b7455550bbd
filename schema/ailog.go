package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type AnalysisOutput map[string]interface{}

func (o AnalysisOutput) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *AnalysisOutput) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, o)
}

// AILog records every scoring decision so the "why this priority" panel
// and operators can audit what the heuristics did. Append-only.
type AILog struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID        uuid.UUID      `json:"request_id" gorm:"type:uuid;index"`
	Action           string         `json:"action"`
	Output           AnalysisOutput `json:"output" gorm:"type:jsonb;not null;default '{}'"`
	Confidence       float64        `json:"confidence"`
	Explanation      string         `json:"explanation" gorm:"type:text"`
	ProcessingTimeMS int64          `json:"processing_time_ms"`
	CreatedAt        time.Time      `json:"created_at"`
}
