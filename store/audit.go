package store

import (
	"github.com/google/uuid"

	"github.com/codeXAI06/ReliefLink/schema"
)

// AppendStatusLog writes one status trail entry. The trail is
// append-only; there is no update or delete path.
func (s *ReliefStore) AppendStatusLog(entry *schema.StatusLog) error {
	return s.ormDB.Create(entry).Error
}

func (s *ReliefStore) ListStatusLogs(requestID uuid.UUID) ([]schema.StatusLog, error) {
	entries := []schema.StatusLog{}

	if err := s.ormDB.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

// AppendAILog records one scoring decision for the audit panel.
func (s *ReliefStore) AppendAILog(entry *schema.AILog) error {
	return s.ormDB.Create(entry).Error
}

func (s *ReliefStore) ListAILogs(requestID uuid.UUID) ([]schema.AILog, error) {
	entries := []schema.AILog{}

	if err := s.ormDB.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
