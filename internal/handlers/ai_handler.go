package handlers

import (
	"net/http"
	"os"

	"go-pg-manager/internal/ai"
	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	Store *store.Store
}

func NewAIHandler(s *store.Store) *AIHandler {
	return &AIHandler{Store: s}
}

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- POST: /api/ask ---
// Lets an admin ask questions like "which rooms are free?" or
// "mark payment 12 as paid" in plain language.
func (h *AIHandler) AskAI(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server missing Gemini API key"})
		return
	}

	response, err := ai.RunAgent(h.Store, req.Message, apiKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": response})
}
