package store_test

import (
	"testing"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComplaintDefaultsToOpen(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "102", 3)
	tenant := createTenant(t, s, "Rahul Sharma", room.ID, true)

	complaint := &models.Complaint{
		TenantID: tenant.ID, RoomID: room.ID,
		Title: "AC not working", Description: "The AC in room 102 has stopped working",
	}
	require.NoError(t, s.CreateComplaint(complaint))

	got, err := s.GetComplaint(complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintOpen, got.Status)
}

func TestCreateComplaintDanglingReferences(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "102", 3)
	tenant := createTenant(t, s, "Rahul Sharma", room.ID, true)

	var referenceErr *store.ReferenceError

	err := s.CreateComplaint(&models.Complaint{TenantID: 999, RoomID: room.ID, Title: "x"})
	require.ErrorAs(t, err, &referenceErr)

	err = s.CreateComplaint(&models.Complaint{TenantID: tenant.ID, RoomID: 999, Title: "x"})
	require.ErrorAs(t, err, &referenceErr)

	complaints, err := s.ListComplaints()
	require.NoError(t, err)
	assert.Empty(t, complaints)
}

func TestComplaintStatusMovesForwardOnly(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "102", 3)
	tenant := createTenant(t, s, "Rahul Sharma", room.ID, true)
	complaint := &models.Complaint{TenantID: tenant.ID, RoomID: room.ID, Title: "Water leakage"}
	require.NoError(t, s.CreateComplaint(complaint))

	inProgress := models.ComplaintInProgress
	got, err := s.UpdateComplaint(complaint.ID, store.ComplaintUpdate{Status: &inProgress})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintInProgress, got.Status)

	resolved := models.ComplaintResolved
	got, err = s.UpdateComplaint(complaint.ID, store.ComplaintUpdate{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, got.Status)

	// No way back
	open := models.ComplaintOpen
	var validationErr *store.ValidationError
	_, err = s.UpdateComplaint(complaint.ID, store.ComplaintUpdate{Status: &open})
	require.ErrorAs(t, err, &validationErr)

	reloaded, err := s.GetComplaint(complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, reloaded.Status)
}

func TestDeleteComplaint(t *testing.T) {
	s := setupTestStore(t)
	room := createRoom(t, s, "102", 3)
	tenant := createTenant(t, s, "Rahul Sharma", room.ID, true)
	complaint := &models.Complaint{TenantID: tenant.ID, RoomID: room.ID, Title: "Noise"}
	require.NoError(t, s.CreateComplaint(complaint))

	require.NoError(t, s.DeleteComplaint(complaint.ID))

	var notFoundErr *store.NotFoundError
	_, err := s.GetComplaint(complaint.ID)
	require.ErrorAs(t, err, &notFoundErr)
}
