package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/gourmet-express/api/apperr"
	"github.com/gourmet-express/api/models"
)

// ProfilePatch carries the only user fields mutable after registration.
// Email and credentials are immutable through this path.
type ProfilePatch struct {
	FullName *string
	Phone    *string
	Address  *string
}

type IdentityStore interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	UpdateProfile(id string, patch ProfilePatch) (*models.User, error)
	RecordToken(userID, token string) error
}

// identityStore serializes its read-modify-write cycles with a mutex: the
// duplicate-email check is a lookup followed by an insert, and the email
// unique index is case-sensitive so it cannot catch two concurrent
// registrations differing only in case.
type identityStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewIdentityStore(db *gorm.DB) IdentityStore {
	return &identityStore{db: db}
}

func (s *identityStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing models.User
	err := s.db.Where("LOWER(email) = ?", strings.ToLower(user.Email)).First(&existing).Error
	if err == nil {
		return apperr.New(apperr.Conflict, "email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(user).Error
}

func (s *identityStore) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *identityStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *identityStore) UpdateProfile(id string, patch ProfilePatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if len(updates) == 0 {
		return user, nil
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *identityStore) RecordToken(userID, token string) error {
	return s.db.Create(&models.IssuedToken{
		Token:    token,
		UserID:   userID,
		IssuedAt: time.Now(),
	}).Error
}
