package main

import (
	"os"
	"strings"
	"time"

	"clinica_back_end_go/auth"
	"clinica_back_end_go/db"
	"clinica_back_end_go/models"
	"clinica_back_end_go/routes"
	"clinica_back_end_go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func corsOrigins() []string {
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3000"}
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	r := gin.Default()

	config := cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))

	// Initialize database
	conn, err := db.InitDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer conn.Close()

	// Live appointment feed for the staff dashboard
	r.GET("/ws", auth.AuthMiddleware(), auth.RequireRoles(models.RoleAdmin, models.RoleDoctor), services.ServeWs)

	// Initialize routes
	routes.SetupBookingRoutes(r, conn)
	routes.SetupSessionRoutes(r, conn)
	routes.SetupAppointmentManagementRoutes(r, conn)
	routes.SetupDoctorRoutes(r, conn)
	routes.SetupPatientRoutes(r, conn)
	routes.SetupDashboardRoutes(r, conn)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	// Start server
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
