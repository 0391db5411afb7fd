package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gourmet-express/api/apperr"
	"github.com/gourmet-express/api/models"
)

// CatalogStore is the read-mostly restaurant and menu view. Rows are seeded
// at startup and never mutated afterwards.
type CatalogStore interface {
	ListRestaurants(query string) ([]models.Restaurant, error)
	GetRestaurant(id string) (*models.Restaurant, error)
	ListMenuItems(restaurantID string) ([]models.MenuItem, error)
	GetMenuItem(id string) (*models.MenuItem, error)
}

type catalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) CatalogStore {
	return &catalogStore{db: db}
}

// likeEscaper neutralizes LIKE metacharacters so the query stays a literal
// substring match.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListRestaurants matches the query as a case-insensitive substring of the
// name or the cuisine. An empty query returns everything.
func (s *catalogStore) ListRestaurants(query string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	tx := s.db
	if query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(cuisine) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	if err := tx.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *catalogStore) GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "restaurant not found")
		}
		return nil, err
	}
	return &restaurant, nil
}

// ListMenuItems returns only items whose availability flag is set.
func (s *catalogStore) ListMenuItems(restaurantID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Where("restaurant_id = ? AND available = ?", restaurantID, true).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *catalogStore) GetMenuItem(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "menu item not found")
		}
		return nil, err
	}
	return &item, nil
}
