package store

import (
	"go-pg-manager/internal/models"

	"gorm.io/gorm"
)

// RoomUpdate carries a partial update; nil fields are left untouched.
type RoomUpdate struct {
	RoomNumber *string `json:"roomNumber"`
	BedCount   *int    `json:"bedCount"`
	Status     *string `json:"status"`
}

func validRoomStatus(s string) bool {
	return s == models.RoomVacant || s == models.RoomOccupied || s == models.RoomMaintenance
}

// CreateRoom stores a new room. Occupancy is derived from tenants, so a new
// room may be created VACANT (the default) or MAINTENANCE, never OCCUPIED.
func (s *Store) CreateRoom(room *models.Room) error {
	if room.RoomNumber == "" {
		return &ValidationError{Field: "roomNumber", Reason: "must not be empty"}
	}
	if room.BedCount <= 0 {
		return &ValidationError{Field: "bedCount", Reason: "must be a positive integer"}
	}
	switch room.Status {
	case "":
		room.Status = models.RoomVacant
		room.ManualOverride = false
	case models.RoomVacant:
		room.ManualOverride = false
	case models.RoomMaintenance:
		room.ManualOverride = true
	case models.RoomOccupied:
		return &ValidationError{Field: "status", Reason: "occupancy is derived from tenants, create the room VACANT"}
	default:
		return &ValidationError{Field: "status", Reason: "must be VACANT, OCCUPIED or MAINTENANCE"}
	}

	room.ID = 0
	return s.db.Transaction(func(tx *gorm.DB) error {
		var dup int64
		if err := tx.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return &ValidationError{Field: "roomNumber", Reason: "already in use"}
		}
		return tx.Create(room).Error
	})
}

func (s *Store) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	err := s.db.Preload("Tenants").First(&room, id).Error
	if err != nil {
		return nil, notFound(err, "room", id)
	}
	return &room, nil
}

func (s *Store) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Preload("Tenants").Find(&rooms).Error
	return rooms, err
}

// UpdateRoom applies a partial update. Setting the status to MAINTENANCE
// flags the manual override; setting it to anything else clears the override
// and the stored value is re-derived from the room's active tenants.
func (s *Store) UpdateRoom(id uint, upd RoomUpdate) (*models.Room, error) {
	var room models.Room
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			return notFound(err, "room", id)
		}

		if upd.RoomNumber != nil {
			if *upd.RoomNumber == "" {
				return &ValidationError{Field: "roomNumber", Reason: "must not be empty"}
			}
			var dup int64
			if err := tx.Model(&models.Room{}).
				Where("room_number = ? AND id <> ?", *upd.RoomNumber, id).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return &ValidationError{Field: "roomNumber", Reason: "already in use"}
			}
			room.RoomNumber = *upd.RoomNumber
		}
		if upd.BedCount != nil {
			if *upd.BedCount <= 0 {
				return &ValidationError{Field: "bedCount", Reason: "must be a positive integer"}
			}
			room.BedCount = *upd.BedCount
		}

		rederive := false
		if upd.Status != nil {
			if !validRoomStatus(*upd.Status) {
				return &ValidationError{Field: "status", Reason: "must be VACANT, OCCUPIED or MAINTENANCE"}
			}
			if *upd.Status == models.RoomMaintenance {
				room.Status = models.RoomMaintenance
				room.ManualOverride = true
			} else {
				room.ManualOverride = false
				rederive = true
			}
		}

		if err := tx.Save(&room).Error; err != nil {
			return err
		}
		if rederive {
			if err := recomputeRoomStatus(tx, room.ID); err != nil {
				return err
			}
			return tx.First(&room, id).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom removes a room outright. Deletion is rejected while any tenant
// or complaint still references the room; reassign them first.
func (s *Store) DeleteRoom(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			return notFound(err, "room", id)
		}

		var tenants int64
		if err := tx.Model(&models.Tenant{}).Where("room_id = ?", id).Count(&tenants).Error; err != nil {
			return err
		}
		if tenants > 0 {
			return &ConstraintError{Reason: "room still has tenants assigned to it"}
		}

		var complaints int64
		if err := tx.Model(&models.Complaint{}).Where("room_id = ?", id).Count(&complaints).Error; err != nil {
			return err
		}
		if complaints > 0 {
			return &ConstraintError{Reason: "room still has complaints filed against it"}
		}

		return tx.Delete(&models.Room{}, id).Error
	})
}
