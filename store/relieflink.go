package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/codeXAI06/ReliefLink/schema"
)

var log = logrus.WithField("prefix", "store")

func gormNotFound(err error) bool {
	return gorm.IsRecordNotFoundError(err)
}

// relieflink main datastore
type ReliefCore interface {
	Ping() error

	// Requests
	CreateRequest(request *schema.HelpRequest) error
	GetRequest(id uuid.UUID) (*schema.HelpRequest, error)
	ListRequests(filter RequestFilter) ([]schema.HelpRequest, int64, error)
	ListOpenRequests(window time.Duration) ([]schema.HelpRequest, error)
	UpdateRequestStatus(change StatusChange) (*schema.HelpRequest, error)
	ApplyScore(id uuid.UUID, update ScoreUpdate) error
	EscalateRequest(id uuid.UUID, fromLevel int, at time.Time) (*schema.HelpRequest, error)
	MarkDuplicate(id uuid.UUID, duplicateOf uuid.UUID, similarity float64) error
	CountRecentByPhone(phone string, window time.Duration) (int, error)
	CountRecentNear(loc schema.Location, radiusKM float64, window time.Duration) (int, error)

	// Helpers
	CreateHelper(helper *schema.Helper) error
	GetHelper(id uuid.UUID) (*schema.Helper, error)
	GetHelperByPhone(phone string) (*schema.Helper, error)
	TouchHelper(id uuid.UUID) error
	IncrementHelperCompleted(id uuid.UUID) error

	// Audit
	AppendStatusLog(entry *schema.StatusLog) error
	ListStatusLogs(requestID uuid.UUID) ([]schema.StatusLog, error)
	AppendAILog(entry *schema.AILog) error
	ListAILogs(requestID uuid.UUID) ([]schema.AILog, error)

	// Stats
	RequestStats() (*RequestStats, error)
}

// ReliefStore is an implementation of ReliefCore
type ReliefStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewReliefStore(ormDB *gorm.DB, mongo MongoStore) *ReliefStore {
	return &ReliefStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *ReliefStore) Ping() error {
	return s.ormDB.DB().Ping()
}
