package store

import (
	"go-pg-manager/internal/models"

	"gorm.io/gorm"
)

// StaffUpdate carries a partial update; nil fields are left untouched.
type StaffUpdate struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Shift *string `json:"shift"`
}

// Staff stands alone: no references to or from the other entities,
// so the CRUD here is the plain version of the uniform shape.

func (s *Store) CreateStaff(m *models.Staff) error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	m.ID = 0
	return s.db.Create(m).Error
}

func (s *Store) GetStaff(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.First(&staff, id).Error; err != nil {
		return nil, notFound(err, "staff", id)
	}
	return &staff, nil
}

func (s *Store) ListStaff() ([]models.Staff, error) {
	var staff []models.Staff
	err := s.db.Find(&staff).Error
	return staff, err
}

func (s *Store) UpdateStaff(id uint, upd StaffUpdate) (*models.Staff, error) {
	var staff models.Staff
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&staff, id).Error; err != nil {
			return notFound(err, "staff", id)
		}
		if upd.Name != nil {
			if *upd.Name == "" {
				return &ValidationError{Field: "name", Reason: "must not be empty"}
			}
			staff.Name = *upd.Name
		}
		if upd.Role != nil {
			staff.Role = *upd.Role
		}
		if upd.Phone != nil {
			staff.Phone = *upd.Phone
		}
		if upd.Shift != nil {
			staff.Shift = *upd.Shift
		}
		return tx.Save(&staff).Error
	})
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *Store) DeleteStaff(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.First(&staff, id).Error; err != nil {
			return notFound(err, "staff", id)
		}
		return tx.Delete(&models.Staff{}, id).Error
	})
}
