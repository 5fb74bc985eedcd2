package handlers

import (
	"net/http"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	Store *store.Store
}

func NewRoomHandler(s *store.Store) *RoomHandler {
	return &RoomHandler{Store: s}
}

// --- GET: List all rooms (tenants attached) ---
func (h *RoomHandler) GetRooms(c *gin.Context) {
	rooms, err := h.Store.ListRooms()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// --- GET: Single room by ID ---
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := h.Store.GetRoom(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// --- POST: Add a new room ---
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.CreateRoom(&room); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// --- PUT: Partial update ---
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd store.RoomUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	room, err := h.Store.UpdateRoom(id, upd)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// --- DELETE: Remove a room (rejected while tenants reference it) ---
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteRoom(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
