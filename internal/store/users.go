package store

import (
	"errors"

	"go-pg-manager/internal/models"

	"gorm.io/gorm"
)

// Users back the login flow only; they are not part of the entity CRUD surface.

func (s *Store) CreateUser(u *models.User) error {
	if u.Username == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	u.ID = 0
	return s.db.Create(u).Error
}

// UserByUsername looks a user up for login. A missing user is a NotFoundError
// so the handler can collapse it into "invalid credentials".
func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	return &user, nil
}
