package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Skills []string

func (s Skills) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Skills) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, s)
}

// Helper is a registered volunteer or NGO worker. The phone number is
// the login key. The current location is not stored here; it lives in
// the mongo helper profile and is refreshed on every dashboard load.
type Helper struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Phone             string    `json:"phone" gorm:"unique_index"`
	Name              string    `json:"name"`
	Organization      string    `json:"organization"`
	CanHelpWith       string    `json:"can_help_with"`
	Skills            Skills    `json:"skills" gorm:"type:jsonb;not null;default '[]'"`
	HasVehicle        bool      `json:"has_vehicle"`
	MaxDistanceKM     float64   `json:"max_distance_km" sql:"default:10"`
	RequestsCompleted int       `json:"requests_completed"`
	Active            bool      `json:"active" sql:"default:true"`
	CreatedAt         time.Time `json:"created_at"`
	LastActiveAt      time.Time `json:"last_active_at"`
}

// SkillTags merges the freeform can-help-with field and the structured
// skill list into one normalized tag set.
func (h Helper) SkillTags() []string {
	seen := map[string]bool{}
	tags := make([]string, 0)
	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, t := range strings.Split(h.CanHelpWith, ",") {
		add(t)
	}
	for _, t := range h.Skills {
		add(t)
	}
	return tags
}
