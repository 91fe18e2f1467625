package routes

import (
	"clinica_back_end_go/auth"
	"clinica_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupSessionRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/auth/login", func(c *gin.Context) {
		services.LoginStaff(c, pool)
	})

	r.GET("/api/v1/auth/session", auth.AuthMiddleware(), func(c *gin.Context) {
		services.GetSession(c, pool)
	})

	r.POST("/api/v1/auth/logout", auth.AuthMiddleware(), services.Logout)
}
