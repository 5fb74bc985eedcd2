package handlers

import (
	"net/http"

	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Store *store.Store
}

func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{Store: s}
}

// --- GET: /stats/overview ---
// Point-in-time dashboard snapshot; reads only, never mutates.
func (h *ReportHandler) GetOverview(c *gin.Context) {
	overview, err := h.Store.Overview()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
