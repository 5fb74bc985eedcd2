package handlers

import (
	"net/http"
	"strconv"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Store *store.Store
}

func NewPaymentHandler(s *store.Store) *PaymentHandler {
	return &PaymentHandler{Store: s}
}

// --- GET: List payments, optionally filtered ---
// Query params: ?tenantId=3&month=11&year=2024
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	var filter store.PaymentFilter

	if v := c.Query("tenantId"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenantId"})
			return
		}
		id := uint(n)
		filter.TenantID = &id
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		filter.Month = &n
	}
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		filter.Year = &n
	}

	payments, err := h.Store.ListPayments(filter)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// --- GET: Single payment by ID ---
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.Store.GetPayment(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// --- POST: Record a billing-period charge ---
func (h *PaymentHandler) AddPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.CreatePayment(&payment); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// --- PUT: Record money against a payment ---
// There is no DELETE route: payments only move between statuses.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd store.PaymentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	payment, err := h.Store.UpdatePayment(id, upd)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
