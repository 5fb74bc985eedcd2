package handlers

import (
	"net/http"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	Store *store.Store
}

func NewStaffHandler(s *store.Store) *StaffHandler {
	return &StaffHandler{Store: s}
}

func (h *StaffHandler) GetStaffList(c *gin.Context) {
	staff, err := h.Store.ListStaff()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	staff, err := h.Store.GetStaff(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) AddStaff(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.CreateStaff(&staff); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd store.StaffUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	staff, err := h.Store.UpdateStaff(id, upd)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteStaff(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}
