package store

import (
	"errors"
	"time"

	"go-pg-manager/internal/models"

	"gorm.io/gorm"
)

// TenantUpdate carries a partial update; nil fields are left untouched.
type TenantUpdate struct {
	Name          *string    `json:"name"`
	Phone         *string    `json:"phone"`
	IDProofType   *string    `json:"idProofType"`
	IDProofNumber *string    `json:"idProofNumber"`
	JoiningDate   *time.Time `json:"joiningDate"`
	RoomID        *uint      `json:"roomId"`
	RentAmount    *float64   `json:"rentAmount"`
	AdvancePaid   *float64   `json:"advancePaid"`
	IsActive      *bool      `json:"isActive"`
}

// CreateTenant stores a new tenant against an existing room and recomputes
// that room's occupancy in the same transaction.
func (s *Store) CreateTenant(t *models.Tenant) error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if t.RoomID == 0 {
		return &ValidationError{Field: "roomId", Reason: "is required"}
	}
	if t.RentAmount < 0 {
		return &ValidationError{Field: "rentAmount", Reason: "must not be negative"}
	}
	if t.AdvancePaid < 0 {
		return &ValidationError{Field: "advancePaid", Reason: "must not be negative"}
	}

	t.ID = 0
	t.Room = nil
	t.Payments = nil
	t.Complaints = nil
	return s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, t.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "room", ID: t.RoomID}
			}
			return err
		}
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return recomputeRoomStatus(tx, t.RoomID)
	})
}

func (s *Store) GetTenant(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.Preload("Room").Preload("Payments").Preload("Complaints").
		First(&tenant, id).Error
	if err != nil {
		return nil, notFound(err, "tenant", id)
	}
	return &tenant, nil
}

func (s *Store) ListTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := s.db.Preload("Room").Preload("Payments").Preload("Complaints").
		Find(&tenants).Error
	return tenants, err
}

// UpdateTenant applies a partial update. Changing roomId or isActive
// recomputes the occupancy of every room involved, old and new.
func (s *Store) UpdateTenant(id uint, upd TenantUpdate) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tenant, id).Error; err != nil {
			return notFound(err, "tenant", id)
		}
		oldRoomID := tenant.RoomID
		occupancyTouched := false

		if upd.Name != nil {
			if *upd.Name == "" {
				return &ValidationError{Field: "name", Reason: "must not be empty"}
			}
			tenant.Name = *upd.Name
		}
		if upd.Phone != nil {
			tenant.Phone = *upd.Phone
		}
		if upd.IDProofType != nil {
			tenant.IDProofType = *upd.IDProofType
		}
		if upd.IDProofNumber != nil {
			tenant.IDProofNumber = *upd.IDProofNumber
		}
		if upd.JoiningDate != nil {
			tenant.JoiningDate = *upd.JoiningDate
		}
		if upd.RentAmount != nil {
			if *upd.RentAmount < 0 {
				return &ValidationError{Field: "rentAmount", Reason: "must not be negative"}
			}
			tenant.RentAmount = *upd.RentAmount
		}
		if upd.AdvancePaid != nil {
			if *upd.AdvancePaid < 0 {
				return &ValidationError{Field: "advancePaid", Reason: "must not be negative"}
			}
			tenant.AdvancePaid = *upd.AdvancePaid
		}
		if upd.RoomID != nil && *upd.RoomID != oldRoomID {
			var room models.Room
			if err := tx.First(&room, *upd.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ReferenceError{Entity: "room", ID: *upd.RoomID}
				}
				return err
			}
			tenant.RoomID = *upd.RoomID
			occupancyTouched = true
		}
		if upd.IsActive != nil && *upd.IsActive != tenant.IsActive {
			tenant.IsActive = *upd.IsActive
			occupancyTouched = true
		}

		if err := tx.Save(&tenant).Error; err != nil {
			return err
		}
		if occupancyTouched {
			if err := recomputeRoomStatus(tx, tenant.RoomID); err != nil {
				return err
			}
			if tenant.RoomID != oldRoomID {
				if err := recomputeRoomStatus(tx, oldRoomID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// DeleteTenant removes the record outright. The soft path for a move-out is
// UpdateTenant with isActive=false; hard deletion is rejected while payments
// or complaints still reference the tenant.
func (s *Store) DeleteTenant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, id).Error; err != nil {
			return notFound(err, "tenant", id)
		}

		var payments int64
		if err := tx.Model(&models.Payment{}).Where("tenant_id = ?", id).Count(&payments).Error; err != nil {
			return err
		}
		if payments > 0 {
			return &ConstraintError{Reason: "tenant still has payment records"}
		}
		var complaints int64
		if err := tx.Model(&models.Complaint{}).Where("tenant_id = ?", id).Count(&complaints).Error; err != nil {
			return err
		}
		if complaints > 0 {
			return &ConstraintError{Reason: "tenant still has open complaint records"}
		}

		if err := tx.Delete(&models.Tenant{}, id).Error; err != nil {
			return err
		}
		return recomputeRoomStatus(tx, tenant.RoomID)
	})
}
