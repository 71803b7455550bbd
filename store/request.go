package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeXAI06/ReliefLink/geo"
	"github.com/codeXAI06/ReliefLink/schema"
)

var (
	ErrRequestNotExist     = fmt.Errorf("the request does not exist")
	ErrRequestStateChanged = fmt.Errorf("the request was updated by someone else")
	ErrInvalidTransition   = fmt.Errorf("the requested status change is not allowed")
)

// RequestFilter narrows and pages the public feed. The zero value lists
// everything, critical first.
type RequestFilter struct {
	Status   schema.RequestStatus
	HelpType schema.HelpType
	Urgency  schema.Urgency
	Flagged  *bool
	HelperID *uuid.UUID
	Limit    int
	Offset   int
}

// StatusChange is one guarded status transition. From is the status the
// caller last saw; the update only applies if it still holds.
type StatusChange struct {
	RequestID uuid.UUID
	From      schema.RequestStatus
	To        schema.RequestStatus
	HelperID  *uuid.UUID
	ChangedBy *uuid.UUID
	Notes     string
}

// ScoreUpdate carries recomputed priority fields back into the row.
type ScoreUpdate struct {
	PriorityScore  int
	PriorityLabel  string
	PriorityReason string
}

// CreateRequest persists a new help request. Derived fields are expected
// to be filled in by the caller before the insert.
func (s *ReliefStore) CreateRequest(request *schema.HelpRequest) error {
	return s.ormDB.Create(request).Error
}

func (s *ReliefStore) GetRequest(id uuid.UUID) (*schema.HelpRequest, error) {
	var request schema.HelpRequest

	if err := s.ormDB.Where("id = ?", id).First(&request).Error; err != nil {
		if gormNotFound(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &request, nil
}

// ListRequests returns one feed page plus the total match count. The
// feed orders by priority score, highest first, with older requests
// winning ties so nothing starves at equal priority.
func (s *ReliefStore) ListRequests(filter RequestFilter) ([]schema.HelpRequest, int64, error) {
	query := s.ormDB.Model(schema.HelpRequest{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.HelpType != "" {
		query = query.Where("help_type = ?", filter.HelpType)
	}
	if filter.Urgency != "" {
		query = query.Where("urgency = ?", filter.Urgency)
	}
	if filter.Flagged != nil {
		query = query.Where("flagged = ?", *filter.Flagged)
	}
	if filter.HelperID != nil {
		query = query.Where("helper_id = ?", *filter.HelperID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	requests := []schema.HelpRequest{}
	if err := query.
		Order("priority_score DESC, created_at ASC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListOpenRequests returns non-terminal requests created inside the
// window, oldest first. A zero window means no age cut.
func (s *ReliefStore) ListOpenRequests(window time.Duration) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	query := s.ormDB.
		Where("status NOT IN (?)", []schema.RequestStatus{schema.StatusCompleted, schema.StatusCancelled})
	if window > 0 {
		query = query.Where("created_at > ?", time.Now().UTC().Add(-window))
	}

	if err := query.Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateRequestStatus applies a guarded transition. The UPDATE carries
// the expected current status in its WHERE clause, so two volunteers
// accepting the same request race on the row and exactly one wins; the
// loser gets ErrRequestStateChanged. A status log entry is appended on
// success.
func (s *ReliefStore) UpdateRequestStatus(change StatusChange) (*schema.HelpRequest, error) {
	if !schema.CanTransition(change.From, change.To) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":     change.To,
		"updated_at": now,
	}
	switch change.To {
	case schema.StatusAccepted:
		updates["helper_id"] = change.HelperID
		updates["accepted_at"] = now
	case schema.StatusCompleted:
		updates["completed_at"] = now
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ?", change.RequestID, change.From).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestStateChanged
	}

	if err := s.AppendStatusLog(&schema.StatusLog{
		RequestID: change.RequestID,
		OldStatus: change.From,
		NewStatus: change.To,
		ChangedBy: change.ChangedBy,
		Notes:     change.Notes,
	}); err != nil {
		log.WithError(err).Error("append status log")
	}

	return s.GetRequest(change.RequestID)
}

// ApplyScore writes recomputed priority fields. Terminal requests are
// frozen and never rewritten.
func (s *ReliefStore) ApplyScore(id uuid.UUID, update ScoreUpdate) error {
	return s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status NOT IN (?)", id, []schema.RequestStatus{schema.StatusCompleted, schema.StatusCancelled}).
		Updates(map[string]interface{}{
			"priority_score":  update.PriorityScore,
			"priority_label":  update.PriorityLabel,
			"priority_reason": update.PriorityReason,
		}).Error
}

// EscalateRequest bumps the escalation level by one. The WHERE clause
// pins the level the sweep read, so a concurrent sweep or a status
// change makes this a no-op reported as ErrRequestStateChanged rather
// than a double bump.
func (s *ReliefStore) EscalateRequest(id uuid.UUID, fromLevel int, at time.Time) (*schema.HelpRequest, error) {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ? AND escalation_level = ?", id, schema.StatusRequested, fromLevel).
		Updates(map[string]interface{}{
			"escalation_level":  fromLevel + 1,
			"last_escalated_at": at,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestStateChanged
	}

	return s.GetRequest(id)
}

// MarkDuplicate links a request to the earlier one it repeats. The
// request stays visible; the link is advisory for responders.
func (s *ReliefStore) MarkDuplicate(id uuid.UUID, duplicateOf uuid.UUID, similarity float64) error {
	return s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"duplicate_of_id":      duplicateOf,
			"duplicate_similarity": similarity,
		}).Error
}

func (s *ReliefStore) CountRecentByPhone(phone string, window time.Duration) (int, error) {
	var count int
	err := s.ormDB.Model(schema.HelpRequest{}).
		Where("phone = ? AND created_at > ?", phone, time.Now().UTC().Add(-window)).
		Count(&count).Error
	return count, err
}

// CountRecentNear counts recent requests around a point. Distance is
// refined in Go over the window's rows; the volume inside a 24h window
// stays small enough that a coordinate index is not worth carrying.
func (s *ReliefStore) CountRecentNear(loc schema.Location, radiusKM float64, window time.Duration) (int, error) {
	requests := []schema.HelpRequest{}
	if err := s.ormDB.
		Select("latitude, longitude").
		Where("created_at > ?", time.Now().UTC().Add(-window)).
		Find(&requests).Error; err != nil {
		return 0, err
	}

	count := 0
	for _, r := range requests {
		if geo.WithinRadius(loc, schema.Location{Latitude: r.Latitude, Longitude: r.Longitude}, radiusKM) {
			count++
		}
	}
	return count, nil
}
