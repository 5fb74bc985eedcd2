package store

import (
	"go-pg-manager/internal/models"
)

// Overview is the point-in-time occupancy and billing snapshot.
type Overview struct {
	TotalRooms     int64   `json:"totalRooms"`
	OccupiedRooms  int64   `json:"occupiedRooms"`
	VacantRooms    int64   `json:"vacantRooms"`
	TotalCollected float64 `json:"totalCollected"`
	TotalPending   float64 `json:"totalPending"`
}

// Overview computes the dashboard snapshot from current store state.
// Vacant is total minus occupied, so rooms under maintenance land in the
// vacant bucket; the collected/pending sums run over all payments with no
// time window. Both are the behavior the dashboard has always shown.
func (s *Store) Overview() (*Overview, error) {
	var o Overview

	if err := s.db.Model(&models.Room{}).Count(&o.TotalRooms).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&models.Room{}).
		Where("status = ?", models.RoomOccupied).
		Count(&o.OccupiedRooms).Error
	if err != nil {
		return nil, err
	}
	o.VacantRooms = o.TotalRooms - o.OccupiedRooms

	// COALESCE ensures we get 0 instead of NULL when no payments match
	err = s.db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&o.TotalCollected).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentUnpaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&o.TotalPending).Error
	if err != nil {
		return nil, err
	}

	return &o, nil
}
