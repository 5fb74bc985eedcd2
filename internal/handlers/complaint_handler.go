package handlers

import (
	"net/http"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	Store *store.Store
}

func NewComplaintHandler(s *store.Store) *ComplaintHandler {
	return &ComplaintHandler{Store: s}
}

func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	complaints, err := h.Store.ListComplaints()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	complaint, err := h.Store.GetComplaint(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

func (h *ComplaintHandler) AddComplaint(c *gin.Context) {
	var complaint models.Complaint
	if err := c.ShouldBindJSON(&complaint); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.CreateComplaint(&complaint); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

// Status moves forward only: OPEN -> IN_PROGRESS -> RESOLVED
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd store.ComplaintUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	complaint, err := h.Store.UpdateComplaint(id, upd)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteComplaint(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
}
