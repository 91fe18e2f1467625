package routes

import (
	"clinica_back_end_go/auth"
	"clinica_back_end_go/models"
	"clinica_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SetupAppointmentManagementRoutes registers the staff appointment screens.
// Both roles see and manage appointments.
func SetupAppointmentManagementRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	appointments := r.Group("/api/v1/admin/appointments",
		auth.AuthMiddleware(), auth.RequireRoles(models.RoleAdmin, models.RoleDoctor))

	appointments.GET("", func(c *gin.Context) {
		services.GetAppointments(c, pool)
	})

	appointments.GET("/today", func(c *gin.Context) {
		services.GetTodaysAppointments(c, pool)
	})

	appointments.POST("", func(c *gin.Context) {
		services.CreateStaffAppointment(c, pool)
	})

	appointments.PATCH("/:appointmentId", func(c *gin.Context) {
		services.UpdateAppointment(c, pool)
	})

	appointments.POST("/:appointmentId/confirm", func(c *gin.Context) {
		services.ConfirmAppointment(c, pool)
	})

	appointments.DELETE("/:appointmentId", func(c *gin.Context) {
		services.DeleteAppointment(c, pool)
	})
}
