package store_test

import (
	"testing"

	"go-pg-manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewEmptyStore(t *testing.T) {
	s := setupTestStore(t)

	overview, err := s.Overview()
	require.NoError(t, err)
	assert.Equal(t, int64(0), overview.TotalRooms)
	assert.Equal(t, int64(0), overview.OccupiedRooms)
	assert.Equal(t, int64(0), overview.VacantRooms)
	assert.Equal(t, 0.0, overview.TotalCollected)
	assert.Equal(t, 0.0, overview.TotalPending)
}

func TestOverviewPaymentTotals(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "102", 3)
	rahul := createTenant(t, s, "Rahul Sharma", room.ID, true)
	amit := createTenant(t, s, "Amit Kumar", room.ID, true)

	createPayment(t, s, rahul.ID, 10, 5000, models.PaymentPaid)
	createPayment(t, s, amit.ID, 11, 4500, models.PaymentPaid)
	createPayment(t, s, rahul.ID, 11, 5000, models.PaymentUnpaid)

	overview, err := s.Overview()
	require.NoError(t, err)
	assert.Equal(t, 9500.0, overview.TotalCollected)
	assert.Equal(t, 5000.0, overview.TotalPending)
}

// PARTIAL payments land in neither bucket; the two sums are strictly
// PAID and UNPAID.
func TestOverviewIgnoresPartialPayments(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "102", 3)
	tenant := createTenant(t, s, "Rahul Sharma", room.ID, true)
	createPayment(t, s, tenant.ID, 10, 5000, models.PaymentPaid)
	createPayment(t, s, tenant.ID, 11, 2500, models.PaymentPartial)

	overview, err := s.Overview()
	require.NoError(t, err)
	assert.Equal(t, 5000.0, overview.TotalCollected)
	assert.Equal(t, 0.0, overview.TotalPending)
}

// Vacant is total minus occupied, so a MAINTENANCE room shows up in the
// vacant bucket. That is the dashboard's long-standing arithmetic.
func TestOverviewMaintenanceCountsAsVacant(t *testing.T) {
	s := setupTestStore(t)

	occupied := createRoom(t, s, "102", 3)
	createTenant(t, s, "Rahul Sharma", occupied.ID, true)
	createRoom(t, s, "101", 2)
	require.NoError(t, s.CreateRoom(&models.Room{
		RoomNumber: "105", BedCount: 4, Status: models.RoomMaintenance,
	}))

	overview, err := s.Overview()
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.TotalRooms)
	assert.Equal(t, int64(1), overview.OccupiedRooms)
	assert.Equal(t, int64(2), overview.VacantRooms)
}
