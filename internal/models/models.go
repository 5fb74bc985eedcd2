package models

import (
	"time"
)

// Room statuses. OCCUPIED and VACANT are derived from active tenants;
// MAINTENANCE is an administrative override.
const (
	RoomVacant      = "VACANT"
	RoomOccupied    = "OCCUPIED"
	RoomMaintenance = "MAINTENANCE"
)

// Payment statuses.
const (
	PaymentUnpaid  = "UNPAID"
	PaymentPaid    = "PAID"
	PaymentPartial = "PARTIAL"
)

// Complaint statuses. Transitions only move forward.
const (
	ComplaintOpen       = "OPEN"
	ComplaintInProgress = "IN_PROGRESS"
	ComplaintResolved   = "RESOLVED"
)

// User - The person logging into the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Role         string    `json:"role"` // 'admin', 'staff'
	CreatedAt    time.Time `json:"created_at"`
}

// Room - A physical unit with beds
type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `gorm:"uniqueIndex;size:20" json:"roomNumber"`
	BedCount   int    `json:"bedCount"`
	Status     string `json:"status"`
	// ManualOverride is true while MAINTENANCE has been set explicitly.
	// Occupancy recomputation leaves the room alone until it is cleared.
	ManualOverride bool        `json:"manualOverride"`
	Tenants        []Tenant    `gorm:"foreignKey:RoomID" json:"tenants,omitempty"`
	Complaints     []Complaint `gorm:"foreignKey:RoomID" json:"complaints,omitempty"`
}

// Tenant - A person occupying a Room
type Tenant struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	IDProofType   string      `json:"idProofType"`
	IDProofNumber string      `json:"idProofNumber"`
	JoiningDate   time.Time   `json:"joiningDate"`
	RoomID        uint        `json:"roomId"`
	Room          *Room       `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	RentAmount    float64     `json:"rentAmount"`
	AdvancePaid   float64     `json:"advancePaid"`
	IsActive      bool        `json:"isActive"`
	Payments      []Payment   `gorm:"foreignKey:TenantID" json:"payments,omitempty"`
	Complaints    []Complaint `gorm:"foreignKey:TenantID" json:"complaints,omitempty"`
}

// Payment - One billing-period charge for a Tenant
type Payment struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	TenantID uint       `json:"tenantId"`
	Tenant   *Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Month    int        `json:"month"` // 1-12
	Year     int        `json:"year"`
	Amount   float64    `json:"amount"`
	DueDate  time.Time  `json:"dueDate"`
	PaidDate *time.Time `json:"paidDate"` // nil until the money is recorded
	Status   string     `json:"status"`
}

// Complaint - A tenant-reported issue tied to a Room
type Complaint struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	TenantID    uint    `json:"tenantId"`
	Tenant      *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	RoomID      uint    `json:"roomId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

// Staff - Personnel record, unrelated to the other entities
type Staff struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"` // 'Watchman', 'Cleaning Staff', ...
	Phone string `json:"phone"`
	Shift string `json:"shift"` // 'Morning', 'Night'
}
