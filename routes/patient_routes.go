package routes

import (
	"clinica_back_end_go/auth"
	"clinica_back_end_go/models"
	"clinica_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupPatientRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	patients := r.Group("/api/v1/admin/patients",
		auth.AuthMiddleware(), auth.RequireRoles(models.RoleAdmin))

	patients.GET("", func(c *gin.Context) {
		services.GetPatients(c, pool)
	})

	patients.GET("/:patientId", func(c *gin.Context) {
		services.GetPatientById(c, pool)
	})

	patients.GET("/:patientId/appointments", func(c *gin.Context) {
		services.GetPatientAppointments(c, pool)
	})

	patients.POST("", func(c *gin.Context) {
		services.CreatePatient(c, pool)
	})

	patients.PUT("/:patientId", func(c *gin.Context) {
		services.UpdatePatient(c, pool)
	})

	patients.DELETE("/:patientId", func(c *gin.Context) {
		services.DeletePatient(c, pool)
	})
}
