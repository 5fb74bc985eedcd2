package main

import (
	"log"
	"time"

	"go-pg-manager/internal/database"
	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the demo dataset. Everything goes through the store so the same
// lifecycle rules apply: rooms are created VACANT or MAINTENANCE and the
// occupied ones get that way by receiving tenants.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Database setup failed: ", err)
	}
	st := store.New(db)

	log.Println("Seeding database...")

	rooms := []*models.Room{
		{RoomNumber: "101", BedCount: 2},
		{RoomNumber: "102", BedCount: 3},
		{RoomNumber: "103", BedCount: 1},
		{RoomNumber: "104", BedCount: 2},
		{RoomNumber: "105", BedCount: 4, Status: models.RoomMaintenance},
	}
	for _, room := range rooms {
		if err := st.CreateRoom(room); err != nil {
			log.Fatalf("seed room %s: %v", room.RoomNumber, err)
		}
	}
	log.Println("Created 5 rooms")

	tenants := []*models.Tenant{
		{
			Name: "Rahul Sharma", Phone: "9876543210",
			IDProofType: "Aadhar", IDProofNumber: "1234-5678-9012",
			JoiningDate: date(2024, 1, 15), RoomID: rooms[1].ID,
			RentAmount: 5000, AdvancePaid: 10000, IsActive: true,
		},
		{
			Name: "Priya Patel", Phone: "9876543211",
			IDProofType: "PAN", IDProofNumber: "ABCDE1234F",
			JoiningDate: date(2024, 2, 1), RoomID: rooms[1].ID,
			RentAmount: 5000, AdvancePaid: 10000, IsActive: true,
		},
		{
			Name: "Amit Kumar", Phone: "9876543212",
			IDProofType: "Aadhar", IDProofNumber: "9876-5432-1098",
			JoiningDate: date(2024, 3, 10), RoomID: rooms[2].ID,
			RentAmount: 4500, AdvancePaid: 9000, IsActive: true,
		},
	}
	for _, tenant := range tenants {
		if err := st.CreateTenant(tenant); err != nil {
			log.Fatalf("seed tenant %s: %v", tenant.Name, err)
		}
	}
	log.Println("Created 3 tenants")

	payments := []*models.Payment{
		{
			TenantID: tenants[0].ID, Month: 10, Year: 2024, Amount: 5000,
			DueDate: date(2024, 10, 5), PaidDate: datePtr(2024, 10, 3),
			Status: models.PaymentPaid,
		},
		{
			TenantID: tenants[0].ID, Month: 11, Year: 2024, Amount: 5000,
			DueDate: date(2024, 11, 5), PaidDate: datePtr(2024, 11, 2),
			Status: models.PaymentPaid,
		},
		{
			TenantID: tenants[1].ID, Month: 11, Year: 2024, Amount: 5000,
			DueDate: date(2024, 11, 5), Status: models.PaymentUnpaid,
		},
		{
			TenantID: tenants[2].ID, Month: 11, Year: 2024, Amount: 4500,
			DueDate: date(2024, 11, 5), PaidDate: datePtr(2024, 11, 4),
			Status: models.PaymentPaid,
		},
	}
	for _, payment := range payments {
		if err := st.CreatePayment(payment); err != nil {
			log.Fatalf("seed payment for tenant %d: %v", payment.TenantID, err)
		}
	}
	log.Println("Created 4 payments")

	complaints := []*models.Complaint{
		{
			TenantID: tenants[0].ID, RoomID: rooms[1].ID,
			Title:       "AC not working",
			Description: "The air conditioner in room 102 has stopped working",
			Status:      models.ComplaintOpen,
		},
		{
			TenantID: tenants[2].ID, RoomID: rooms[2].ID,
			Title:       "Water leakage",
			Description: "There is water leakage from the bathroom ceiling",
			Status:      models.ComplaintInProgress,
		},
	}
	for _, complaint := range complaints {
		if err := st.CreateComplaint(complaint); err != nil {
			log.Fatalf("seed complaint %q: %v", complaint.Title, err)
		}
	}
	log.Println("Created 2 complaints")

	staff := []*models.Staff{
		{Name: "Ravi Singh", Role: "Watchman", Phone: "9876543220", Shift: "Night"},
		{Name: "Sunita Devi", Role: "Cleaning Staff", Phone: "9876543221", Shift: "Morning"},
	}
	for _, member := range staff {
		if err := st.CreateStaff(member); err != nil {
			log.Fatalf("seed staff %s: %v", member.Name, err)
		}
	}
	log.Println("Created 2 staff members")

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash admin password: ", err)
	}
	admin := models.User{Username: "admin", PasswordHash: string(hash), Role: "admin"}
	if err := st.CreateUser(&admin); err != nil {
		log.Fatal("seed admin user: ", err)
	}
	log.Println("Created admin user")

	log.Println("Database seeded successfully!")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
