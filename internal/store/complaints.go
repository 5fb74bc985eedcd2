package store

import (
	"errors"

	"go-pg-manager/internal/models"

	"gorm.io/gorm"
)

// ComplaintUpdate carries a partial update; nil fields are left untouched.
type ComplaintUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// complaintRank orders the statuses so transitions can only move forward:
// OPEN -> IN_PROGRESS -> RESOLVED.
func complaintRank(s string) int {
	switch s {
	case models.ComplaintOpen:
		return 0
	case models.ComplaintInProgress:
		return 1
	case models.ComplaintResolved:
		return 2
	}
	return -1
}

// CreateComplaint files a new complaint for an existing tenant and room.
func (s *Store) CreateComplaint(c *models.Complaint) error {
	if c.TenantID == 0 {
		return &ValidationError{Field: "tenantId", Reason: "is required"}
	}
	if c.RoomID == 0 {
		return &ValidationError{Field: "roomId", Reason: "is required"}
	}
	if c.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if c.Status == "" {
		c.Status = models.ComplaintOpen
	}
	if complaintRank(c.Status) < 0 {
		return &ValidationError{Field: "status", Reason: "must be OPEN, IN_PROGRESS or RESOLVED"}
	}

	c.ID = 0
	c.Tenant = nil
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, c.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "tenant", ID: c.TenantID}
			}
			return err
		}
		var room models.Room
		if err := tx.First(&room, c.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "room", ID: c.RoomID}
			}
			return err
		}
		return tx.Create(c).Error
	})
}

func (s *Store) GetComplaint(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.db.Preload("Tenant").First(&complaint, id).Error
	if err != nil {
		return nil, notFound(err, "complaint", id)
	}
	return &complaint, nil
}

func (s *Store) ListComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.db.Preload("Tenant").Find(&complaints).Error
	return complaints, err
}

// UpdateComplaint applies a partial update. A complaint never moves backward,
// so RESOLVED -> OPEN and the like are rejected.
func (s *Store) UpdateComplaint(id uint, upd ComplaintUpdate) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&complaint, id).Error; err != nil {
			return notFound(err, "complaint", id)
		}

		if upd.Title != nil {
			if *upd.Title == "" {
				return &ValidationError{Field: "title", Reason: "must not be empty"}
			}
			complaint.Title = *upd.Title
		}
		if upd.Description != nil {
			complaint.Description = *upd.Description
		}
		if upd.Status != nil {
			rank := complaintRank(*upd.Status)
			if rank < 0 {
				return &ValidationError{Field: "status", Reason: "must be OPEN, IN_PROGRESS or RESOLVED"}
			}
			if rank < complaintRank(complaint.Status) {
				return &ValidationError{Field: "status", Reason: "complaints only move forward, cannot go back to " + *upd.Status}
			}
			complaint.Status = *upd.Status
		}

		return tx.Save(&complaint).Error
	})
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (s *Store) DeleteComplaint(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var complaint models.Complaint
		if err := tx.First(&complaint, id).Error; err != nil {
			return notFound(err, "complaint", id)
		}
		return tx.Delete(&models.Complaint{}, id).Error
	})
}
