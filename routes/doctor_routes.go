package routes

import (
	"clinica_back_end_go/auth"
	"clinica_back_end_go/models"
	"clinica_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SetupDoctorRoutes registers doctor account management. Provisioning and
// deprovisioning are admin-only.
func SetupDoctorRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	doctors := r.Group("/api/v1/admin/doctors",
		auth.AuthMiddleware(), auth.RequireRoles(models.RoleAdmin))

	doctors.GET("", func(c *gin.Context) {
		services.GetAdminDoctors(c, pool)
	})

	doctors.POST("", func(c *gin.Context) {
		services.CreateDoctor(c, pool)
	})

	doctors.PUT("/:doctorId", func(c *gin.Context) {
		services.UpdateDoctor(c, pool)
	})

	doctors.DELETE("/:doctorId", func(c *gin.Context) {
		services.DeleteDoctor(c, pool)
	})
}
