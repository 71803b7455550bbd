package store

import (
	"time"

	"github.com/codeXAI06/ReliefLink/schema"
)

// RequestStats is the public dashboard summary.
type RequestStats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
	ByType    map[string]int64 `json:"by_type"`
	ByUrgency map[string]int64 `json:"by_urgency"`
	ByLabel   map[string]int64 `json:"by_label"`

	OpenCount       int64   `json:"open_count"`
	OpenFlagged     int64   `json:"open_flagged"`
	OpenEscalated   int64   `json:"open_escalated"`
	AveragePriority float64 `json:"average_priority"`

	CompletedLast24H         int64   `json:"completed_last_24h"`
	AverageCompletionMinutes float64 `json:"average_completion_minutes"`
	ActiveHelpers            int64   `json:"active_helpers"`
}

func (s *ReliefStore) countGrouped(column string) (map[string]int64, error) {
	rows, err := s.ormDB.Model(schema.HelpRequest{}).
		Select(column + ", count(*)").
		Group(column).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		if key != "" {
			counts[key] = count
		}
	}
	return counts, rows.Err()
}

// RequestStats aggregates the dashboard numbers. Each aggregate is its
// own query; the dashboard refresh rate is low and the queries stay
// simple enough to read.
func (s *ReliefStore) RequestStats() (*RequestStats, error) {
	stats := RequestStats{}

	if err := s.ormDB.Model(schema.HelpRequest{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var err error
	if stats.ByStatus, err = s.countGrouped("status"); err != nil {
		return nil, err
	}
	if stats.ByType, err = s.countGrouped("help_type"); err != nil {
		return nil, err
	}
	if stats.ByUrgency, err = s.countGrouped("urgency"); err != nil {
		return nil, err
	}
	if stats.ByLabel, err = s.countGrouped("priority_label"); err != nil {
		return nil, err
	}

	terminal := []schema.RequestStatus{schema.StatusCompleted, schema.StatusCancelled}
	open := s.ormDB.Model(schema.HelpRequest{}).Where("status NOT IN (?)", terminal)
	if err := open.Count(&stats.OpenCount).Error; err != nil {
		return nil, err
	}
	if err := open.Where("flagged = ?", true).Count(&stats.OpenFlagged).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("status NOT IN (?) AND escalation_level > 0", terminal).
		Count(&stats.OpenEscalated).Error; err != nil {
		return nil, err
	}

	row := s.ormDB.Model(schema.HelpRequest{}).
		Where("status NOT IN (?)", terminal).
		Select("coalesce(avg(priority_score), 0)").Row()
	if err := row.Scan(&stats.AveragePriority); err != nil {
		return nil, err
	}

	dayAgo := time.Now().UTC().Add(-24 * time.Hour)
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("status = ? AND completed_at > ?", schema.StatusCompleted, dayAgo).
		Count(&stats.CompletedLast24H).Error; err != nil {
		return nil, err
	}

	row = s.ormDB.Model(schema.HelpRequest{}).
		Where("status = ? AND completed_at IS NOT NULL", schema.StatusCompleted).
		Select("coalesce(avg(extract(epoch from completed_at - created_at) / 60), 0)").Row()
	if err := row.Scan(&stats.AverageCompletionMinutes); err != nil {
		return nil, err
	}

	weekAgo := time.Now().UTC().Add(-7 * 24 * time.Hour)
	if err := s.ormDB.Model(schema.Helper{}).
		Where("active = ? AND last_active_at > ?", true, weekAgo).
		Count(&stats.ActiveHelpers).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
