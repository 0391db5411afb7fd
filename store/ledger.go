package store

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gourmet-express/api/apperr"
	"github.com/gourmet-express/api/models"
)

// OrderLedger holds every order. Update runs the whole read-modify-write
// cycle under a single mutex so concurrent tracking and payment calls against
// the same order cannot lose each other's writes.
type OrderLedger interface {
	Create(order *models.Order) error
	Get(id string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	Update(id string, mutate func(*models.Order) error) (*models.Order, error)
}

type orderLedger struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewOrderLedger(db *gorm.DB) OrderLedger {
	return &orderLedger{db: db}
}

func (s *orderLedger) Create(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Create(order).Error
}

func (s *orderLedger) Get(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}
	return &order, nil
}

func (s *orderLedger) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Where("user_id = ?", userID).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Update loads the order, applies mutate and saves the order columns. If
// mutate returns an error nothing is written.
func (s *orderLedger) Update(id string, mutate func(*models.Order) error) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := mutate(order); err != nil {
		return nil, err
	}
	if err := s.db.Omit(clause.Associations).Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
