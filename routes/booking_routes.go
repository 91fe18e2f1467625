package routes

import (
	"clinica_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SetupBookingRoutes registers the public booking flow: no session required.
func SetupBookingRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/api/v1/specialties", services.GetSpecialties)

	r.GET("/api/v1/doctors", func(c *gin.Context) {
		services.GetDoctors(c, pool)
	})

	r.GET("/api/v1/slots", func(c *gin.Context) {
		services.GetTimeSlots(c, pool)
	})

	r.POST("/api/v1/appointments", func(c *gin.Context) {
		services.CreateBooking(c, pool)
	})
}
