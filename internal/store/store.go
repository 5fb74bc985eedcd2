package store

import (
	"errors"

	"go-pg-manager/internal/models"

	"gorm.io/gorm"
)

// Store owns all reads and writes against the database. Construct one per
// connection with New; nothing in here touches package-level state, so tests
// can spin up isolated instances.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// recomputeRoomStatus re-derives a Room's occupancy from its active tenants.
// Runs inside the caller's transaction so a concurrent write cannot observe
// a half-updated Room/Tenant pair; serialization beyond that is left to the
// database's isolation level. MAINTENANCE set by an admin wins until it is
// explicitly cleared.
func recomputeRoomStatus(tx *gorm.DB, roomID uint) error {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ReferenceError{Entity: "room", ID: roomID}
		}
		return err
	}

	if room.ManualOverride {
		return nil
	}

	var active int64
	err := tx.Model(&models.Tenant{}).
		Where("room_id = ? AND is_active = ?", roomID, true).
		Count(&active).Error
	if err != nil {
		return err
	}

	status := models.RoomVacant
	if active > 0 {
		status = models.RoomOccupied
	}
	if status == room.Status {
		return nil
	}
	return tx.Model(&room).Update("status", status).Error
}

// notFound translates gorm's record-not-found into the domain taxonomy.
func notFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}
