package store

import (
	"errors"
	"time"

	"go-pg-manager/internal/models"

	"gorm.io/gorm"
)

// PaymentFilter narrows ListPayments; nil fields match everything.
type PaymentFilter struct {
	TenantID *uint
	Month    *int
	Year     *int
}

// PaymentUpdate carries a partial update; nil fields are left untouched.
type PaymentUpdate struct {
	TenantID *uint      `json:"tenantId"`
	Month    *int       `json:"month"`
	Year     *int       `json:"year"`
	Amount   *float64   `json:"amount"`
	DueDate  *time.Time `json:"dueDate"`
	PaidDate *time.Time `json:"paidDate"`
	Status   *string    `json:"status"`
}

func validPaymentStatus(s string) bool {
	return s == models.PaymentUnpaid || s == models.PaymentPaid || s == models.PaymentPartial
}

// CreatePayment records one billing-period charge for an existing tenant.
// A PAID payment must carry its paidDate; an UNPAID one must not.
func (s *Store) CreatePayment(p *models.Payment) error {
	if p.TenantID == 0 {
		return &ValidationError{Field: "tenantId", Reason: "is required"}
	}
	if p.Month < 1 || p.Month > 12 {
		return &ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}
	if p.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if p.Status == "" {
		p.Status = models.PaymentUnpaid
	}
	if !validPaymentStatus(p.Status) {
		return &ValidationError{Field: "status", Reason: "must be UNPAID, PAID or PARTIAL"}
	}
	if p.Status == models.PaymentPaid && p.PaidDate == nil {
		return &ValidationError{Field: "paidDate", Reason: "is required when status is PAID"}
	}
	if p.Status == models.PaymentUnpaid {
		p.PaidDate = nil
	}

	p.ID = 0
	p.Tenant = nil
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, p.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "tenant", ID: p.TenantID}
			}
			return err
		}
		return tx.Create(p).Error
	})
}

func (s *Store) GetPayment(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Preload("Tenant").First(&payment, id).Error
	if err != nil {
		return nil, notFound(err, "payment", id)
	}
	return &payment, nil
}

func (s *Store) ListPayments(filter PaymentFilter) ([]models.Payment, error) {
	q := s.db.Preload("Tenant")
	if filter.TenantID != nil {
		q = q.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.Month != nil {
		q = q.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}
	var payments []models.Payment
	err := q.Find(&payments).Error
	return payments, err
}

// UpdatePayment applies a partial update. Payments are never deleted, only
// moved between UNPAID, PARTIAL and PAID as money is recorded.
func (s *Store) UpdatePayment(id uint, upd PaymentUpdate) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, id).Error; err != nil {
			return notFound(err, "payment", id)
		}

		if upd.TenantID != nil && *upd.TenantID != payment.TenantID {
			var tenant models.Tenant
			if err := tx.First(&tenant, *upd.TenantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ReferenceError{Entity: "tenant", ID: *upd.TenantID}
				}
				return err
			}
			payment.TenantID = *upd.TenantID
		}
		if upd.Month != nil {
			if *upd.Month < 1 || *upd.Month > 12 {
				return &ValidationError{Field: "month", Reason: "must be between 1 and 12"}
			}
			payment.Month = *upd.Month
		}
		if upd.Year != nil {
			payment.Year = *upd.Year
		}
		if upd.Amount != nil {
			if *upd.Amount <= 0 {
				return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
			}
			payment.Amount = *upd.Amount
		}
		if upd.DueDate != nil {
			payment.DueDate = *upd.DueDate
		}
		if upd.PaidDate != nil {
			payment.PaidDate = upd.PaidDate
		}
		if upd.Status != nil {
			if !validPaymentStatus(*upd.Status) {
				return &ValidationError{Field: "status", Reason: "must be UNPAID, PAID or PARTIAL"}
			}
			payment.Status = *upd.Status
		}

		// Settle the status/paidDate pairing after all fields are applied.
		switch payment.Status {
		case models.PaymentPaid:
			if payment.PaidDate == nil {
				return &ValidationError{Field: "paidDate", Reason: "is required when status is PAID"}
			}
		case models.PaymentUnpaid:
			payment.PaidDate = nil
		}

		// Save writes every column, so a cleared paid_date goes back to NULL.
		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
