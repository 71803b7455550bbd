package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/codeXAI06/ReliefLink/schema"
)

var (
	ErrHelperNotExist = fmt.Errorf("the helper does not exist")
	ErrPhoneTaken     = fmt.Errorf("this phone number is already registered")
)

// CreateHelper registers a volunteer. The phone number is the login key
// and unique; a second registration with the same phone fails with
// ErrPhoneTaken.
func (s *ReliefStore) CreateHelper(helper *schema.Helper) error {
	helper.Active = true
	helper.LastActiveAt = time.Now().UTC()

	if err := s.ormDB.Create(helper).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrPhoneTaken
		}
		return err
	}
	return nil
}

func (s *ReliefStore) GetHelper(id uuid.UUID) (*schema.Helper, error) {
	var helper schema.Helper

	if err := s.ormDB.Where("id = ?", id).First(&helper).Error; err != nil {
		if gormNotFound(err) {
			return nil, ErrHelperNotExist
		}
		return nil, err
	}

	return &helper, nil
}

func (s *ReliefStore) GetHelperByPhone(phone string) (*schema.Helper, error) {
	var helper schema.Helper

	if err := s.ormDB.Where("phone = ?", phone).First(&helper).Error; err != nil {
		if gormNotFound(err) {
			return nil, ErrHelperNotExist
		}
		return nil, err
	}

	return &helper, nil
}

// TouchHelper refreshes the last-active timestamp. Called on every
// authenticated helper action so stale profiles drop out of matching.
func (s *ReliefStore) TouchHelper(id uuid.UUID) error {
	return s.ormDB.Model(schema.Helper{}).
		Where("id = ?", id).
		Update("last_active_at", time.Now().UTC()).Error
}

// IncrementHelperCompleted bumps the completed-request counter when a
// request the helper accepted reaches completed.
func (s *ReliefStore) IncrementHelperCompleted(id uuid.UUID) error {
	return s.ormDB.Model(schema.Helper{}).
		Where("id = ?", id).
		Update("requests_completed", gorm.Expr("requests_completed + 1")).Error
}
