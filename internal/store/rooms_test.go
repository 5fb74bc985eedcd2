package store_test

import (
	"testing"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomDefaultsToVacant(t *testing.T) {
	s := setupTestStore(t)

	room := &models.Room{RoomNumber: "101", BedCount: 2}
	require.NoError(t, s.CreateRoom(room))

	got, err := s.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomVacant, got.Status)
	assert.False(t, got.ManualOverride)
}

func TestCreateRoomRejectsBadFields(t *testing.T) {
	s := setupTestStore(t)

	var validationErr *store.ValidationError

	err := s.CreateRoom(&models.Room{RoomNumber: "", BedCount: 2})
	require.ErrorAs(t, err, &validationErr)

	err = s.CreateRoom(&models.Room{RoomNumber: "101", BedCount: 0})
	require.ErrorAs(t, err, &validationErr)

	// Occupancy is derived, never asserted at creation
	err = s.CreateRoom(&models.Room{RoomNumber: "101", BedCount: 2, Status: models.RoomOccupied})
	require.ErrorAs(t, err, &validationErr)

	rooms, err := s.ListRooms()
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	s := setupTestStore(t)
	createRoom(t, s, "101", 2)

	var validationErr *store.ValidationError
	err := s.CreateRoom(&models.Room{RoomNumber: "101", BedCount: 3})
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateRoomMaintenanceSetsOverride(t *testing.T) {
	s := setupTestStore(t)

	room := &models.Room{RoomNumber: "105", BedCount: 4, Status: models.RoomMaintenance}
	require.NoError(t, s.CreateRoom(room))

	got, err := s.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, got.Status)
	assert.True(t, got.ManualOverride)
}

func TestUpdateRoomPartialFields(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "101", 2)

	beds := 4
	got, err := s.UpdateRoom(room.ID, store.RoomUpdate{BedCount: &beds})
	require.NoError(t, err)
	assert.Equal(t, 4, got.BedCount)
	assert.Equal(t, "101", got.RoomNumber) // untouched
}

func TestMaintenanceOverrideSurvivesTenantChurn(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "105", 4)

	maintenance := models.RoomMaintenance
	_, err := s.UpdateRoom(room.ID, store.RoomUpdate{Status: &maintenance})
	require.NoError(t, err)

	// Tenant moves in and out; the override must win both times
	tenant := createTenant(t, s, "Rahul Sharma", room.ID, true)
	got, err := s.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, got.Status)

	inactive := false
	_, err = s.UpdateTenant(tenant.ID, store.TenantUpdate{IsActive: &inactive})
	require.NoError(t, err)
	got, err = s.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, got.Status)
}

func TestClearingMaintenanceRederivesOccupancy(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "105", 4)
	createTenant(t, s, "Rahul Sharma", room.ID, true)

	maintenance := models.RoomMaintenance
	_, err := s.UpdateRoom(room.ID, store.RoomUpdate{Status: &maintenance})
	require.NoError(t, err)

	// Admin clears the override; status comes back from the active tenant
	vacant := models.RoomVacant
	got, err := s.UpdateRoom(room.ID, store.RoomUpdate{Status: &vacant})
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, got.Status)
	assert.False(t, got.ManualOverride)
}

func TestDeleteRoomWithTenantsRejected(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "102", 3)
	tenant := createTenant(t, s, "Rahul Sharma", room.ID, true)

	var constraintErr *store.ConstraintError
	err := s.DeleteRoom(room.ID)
	require.ErrorAs(t, err, &constraintErr)

	// Nothing changed
	gotRoom, err := s.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, gotRoom.Status)
	_, err = s.GetTenant(tenant.ID)
	require.NoError(t, err)
}

func TestDeleteRoom(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "104", 2)

	require.NoError(t, s.DeleteRoom(room.ID))

	var notFoundErr *store.NotFoundError
	_, err := s.GetRoom(room.ID)
	require.ErrorAs(t, err, &notFoundErr)

	err = s.DeleteRoom(room.ID)
	require.ErrorAs(t, err, &notFoundErr)
}
