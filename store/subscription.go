package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gourmet-express/api/apperr"
	"github.com/gourmet-express/api/models"
)

// SubscriptionStore keeps at most one notification target per user.
type SubscriptionStore interface {
	Put(sub *models.Subscription) error
	Get(userID string) (*models.Subscription, error)
}

type subscriptionStore struct {
	db *gorm.DB
}

func NewSubscriptionStore(db *gorm.DB) SubscriptionStore {
	return &subscriptionStore{db: db}
}

func (s *subscriptionStore) Put(sub *models.Subscription) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(sub).Error
}

func (s *subscriptionStore) Get(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.First(&sub, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "no subscription for user")
		}
		return nil, err
	}
	return &sub, nil
}
