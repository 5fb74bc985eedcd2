package main

import (
	"log"
	"os"
	"time"

	"go-pg-manager/internal/database"
	"go-pg-manager/internal/handlers"
	"go-pg-manager/internal/middleware"
	"go-pg-manager/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Database setup failed: ", err)
	}
	st := store.New(db)

	roomHandler := handlers.NewRoomHandler(st)
	tenantHandler := handlers.NewTenantHandler(st)
	paymentHandler := handlers.NewPaymentHandler(st)
	complaintHandler := handlers.NewComplaintHandler(st)
	staffHandler := handlers.NewStaffHandler(st)
	reportHandler := handlers.NewReportHandler(st)
	authHandler := handlers.NewAuthHandler(st)
	aiHandler := handlers.NewAIHandler(st)

	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/auth/login", authHandler.Login)

	// --- FEATURE FLAG: Admin Registration ---
	// Only opens if we explicitly allow it in .env
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/auth/register", authHandler.Register)
		log.Println("WARNING: Registration route is OPEN. Disable this in production!")
	}

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// READS: open to staff and admin
		api.GET("/stats/overview", reportHandler.GetOverview)
		api.GET("/rooms", roomHandler.GetRooms)
		api.GET("/rooms/:id", roomHandler.GetRoom)
		api.GET("/tenants", tenantHandler.GetTenants)
		api.GET("/tenants/:id", tenantHandler.GetTenant)
		api.GET("/tenants/:id/payments", tenantHandler.GetTenantPayments)
		api.GET("/payments", paymentHandler.GetPayments)
		api.GET("/payments/:id", paymentHandler.GetPayment)
		api.GET("/complaints", complaintHandler.GetComplaints)
		api.GET("/complaints/:id", complaintHandler.GetComplaint)
		api.GET("/staff", staffHandler.GetStaffList)
		api.GET("/staff/:id", staffHandler.GetStaff)

		// Tenants can file complaints themselves
		api.POST("/complaints", complaintHandler.AddComplaint)

		// WRITES: admin only
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/ask", aiHandler.AskAI)

			admin.POST("/rooms", roomHandler.AddRoom)
			admin.PUT("/rooms/:id", roomHandler.UpdateRoom)
			admin.DELETE("/rooms/:id", roomHandler.DeleteRoom)

			admin.POST("/tenants", tenantHandler.AddTenant)
			admin.PUT("/tenants/:id", tenantHandler.UpdateTenant)
			admin.DELETE("/tenants/:id", tenantHandler.DeleteTenant)

			// No DELETE for payments: they only change status
			admin.POST("/payments", paymentHandler.AddPayment)
			admin.PUT("/payments/:id", paymentHandler.UpdatePayment)

			admin.PUT("/complaints/:id", complaintHandler.UpdateComplaint)
			admin.DELETE("/complaints/:id", complaintHandler.DeleteComplaint)

			admin.POST("/staff", staffHandler.AddStaff)
			admin.PUT("/staff/:id", staffHandler.UpdateStaff)
			admin.DELETE("/staff/:id", staffHandler.DeleteStaff)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Println("PG Management API running on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
