package handlers

import (
	"net/http"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	Store *store.Store
}

func NewTenantHandler(s *store.Store) *TenantHandler {
	return &TenantHandler{Store: s}
}

// --- GET: List all tenants (room, payments, complaints attached) ---
func (h *TenantHandler) GetTenants(c *gin.Context) {
	tenants, err := h.Store.ListTenants()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// --- GET: Single tenant by ID ---
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tenant, err := h.Store.GetTenant(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// --- GET: A tenant's payment history ---
func (h *TenantHandler) GetTenantPayments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	// Confirm the tenant exists so a bad ID is a 404, not an empty list
	if _, err := h.Store.GetTenant(id); err != nil {
		respondStoreError(c, err)
		return
	}
	payments, err := h.Store.ListPayments(store.PaymentFilter{TenantID: &id})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// --- POST: Add a new tenant against an existing room ---
func (h *TenantHandler) AddTenant(c *gin.Context) {
	var tenant models.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.CreateTenant(&tenant); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

// --- PUT: Partial update (moving rooms / moving out lands here) ---
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd store.TenantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	tenant, err := h.Store.UpdateTenant(id, upd)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// --- DELETE: Remove a tenant record outright ---
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteTenant(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tenant deleted successfully"})
}
