package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type HelpType string

const (
	HelpFood    HelpType = "food"
	HelpWater   HelpType = "water"
	HelpMedical HelpType = "medical"
	HelpShelter HelpType = "shelter"
	HelpRescue  HelpType = "rescue"
	HelpOther   HelpType = "other"
)

var HelpTypes = []HelpType{HelpFood, HelpWater, HelpMedical, HelpShelter, HelpRescue, HelpOther}

// ValidHelpType reports whether t is one of the six known help types.
func ValidHelpType(t HelpType) bool {
	for _, k := range HelpTypes {
		if t == k {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyModerate Urgency = "moderate"
	UrgencyLow      Urgency = "low"
)

func ValidUrgency(u Urgency) bool {
	return u == UrgencyCritical || u == UrgencyModerate || u == UrgencyLow
}

type RequestStatus string

const (
	StatusRequested  RequestStatus = "requested"
	StatusAccepted   RequestStatus = "accepted"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

// NextStatuses lists the transitions allowed from each state. A request
// may be cancelled from any non-terminal state; there are no other paths.
var NextStatuses = map[RequestStatus][]RequestStatus{
	StatusRequested:  {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to RequestStatus) bool {
	for _, s := range NextStatuses[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether a status freezes the request. Terminal
// requests are never re-scored or escalated.
func (s RequestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type IndicatorScores map[string]float64

func (i IndicatorScores) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *IndicatorScores) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, i)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// HelpRequest is the main record of the system: a person asking for help
// during a disaster. The Detected*/Distress*/Priority*/Escalation*/
// Duplicate* fields are derived by the scoring subsystem and are never
// edited by hand; the priority score is always recomputable from the
// persisted inputs alone.
type HelpRequest struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	HelpType    HelpType      `json:"help_type"`
	Description string        `json:"description" gorm:"type:text"`
	Urgency     Urgency       `json:"urgency" sql:"default:'moderate'"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Address     string        `json:"address"`
	Phone       string        `json:"phone"`
	ContactName string        `json:"contact_name"`
	Status      RequestStatus `json:"status" sql:"default:'requested'"`
	HelperID    *uuid.UUID    `json:"helper_id" gorm:"type:uuid"`

	// scoring subsystem output
	DetectedType        HelpType        `json:"detected_type"`
	DetectedConfidence  float64         `json:"detected_confidence"`
	DetectedLanguage    string          `json:"detected_language"`
	DistressScore       float64         `json:"distress_score"`
	DistressIndicators  IndicatorScores `json:"distress_indicators" gorm:"type:jsonb;not null;default '{}'"`
	VulnerableGroups    StringList      `json:"vulnerable_groups" gorm:"type:jsonb;not null;default '[]'"`
	ExtractedSupplies   StringList      `json:"extracted_supplies" gorm:"type:jsonb;not null;default '[]'"`
	PriorityScore       int             `json:"priority_score"`
	PriorityLabel       string          `json:"priority_label"`
	PriorityReason      string          `json:"priority_reason" gorm:"type:text"`
	EscalationLevel     int             `json:"escalation_level"`
	LastEscalatedAt     *time.Time      `json:"last_escalated_at"`
	DuplicateOfID       *uuid.UUID      `json:"duplicate_of_id" gorm:"type:uuid"`
	DuplicateSimilarity *float64        `json:"duplicate_similarity"`
	Flagged             bool            `json:"flagged"`
	FlagReason          string          `json:"flag_reason"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AcceptedAt  *time.Time `json:"accepted_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// set at read time for display; never persisted
	TimeAgo string `json:"time_ago,omitempty" gorm:"-"`
}

// EffectiveType prefers the user-declared type and falls back to the
// detected one. Used by the scorer and the matcher.
func (r HelpRequest) EffectiveType() HelpType {
	if r.HelpType != "" && r.HelpType != HelpOther {
		return r.HelpType
	}
	if r.DetectedType != "" {
		return r.DetectedType
	}
	return r.HelpType
}
