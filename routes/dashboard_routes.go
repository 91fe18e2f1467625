package routes

import (
	"clinica_back_end_go/auth"
	"clinica_back_end_go/models"
	"clinica_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupDashboardRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	dashboard := r.Group("/api/v1/admin/dashboard",
		auth.AuthMiddleware(), auth.RequireRoles(models.RoleAdmin, models.RoleDoctor))

	dashboard.GET("/stats", func(c *gin.Context) {
		services.GetDashboardStats(c, pool)
	})

	dashboard.GET("/upcoming", func(c *gin.Context) {
		services.GetUpcomingAppointments(c, pool)
	})

	// Placeholder sections of the admin panel.
	admin := r.Group("/api/v1/admin", auth.AuthMiddleware())
	admin.GET("/administration", auth.RequireRoles(models.RoleAdmin), services.UnderConstruction)
	admin.GET("/help", auth.RequireRoles(models.RoleAdmin, models.RoleDoctor), services.UnderConstruction)
	admin.GET("/settings", auth.RequireRoles(models.RoleAdmin, models.RoleDoctor), services.UnderConstruction)
}
