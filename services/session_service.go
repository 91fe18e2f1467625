package services

import (
	"context"
	"net/http"

	"clinica_back_end_go/auth"
	"clinica_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// LoginStaff implements POST /api/v1/auth/login for admin and doctor
// accounts. A successful login answers with the session token and the
// profile so the dashboard can route by role immediately.
func LoginStaff(c *gin.Context, pool *pgxpool.Pool) {
	var loginReq models.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var profile models.Profile
	var hashedPassword string
	ctx := context.Background()
	err := pool.QueryRow(ctx,
		"SELECT id, full_name, email, hashed_password, role, specialties FROM profiles WHERE email = $1",
		loginReq.Email).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&hashedPassword,
		&profile.Role,
		&profile.Specialties,
	)
	if err != nil {
		if isNoRows(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		} else {
			log.Error().Err(err).Msg("failed to query profile for login")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(auth.User{ID: profile.ID, Role: profile.Role})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "profile": profile})
}

// GetSession implements GET /api/v1/auth/session: the profile row matching
// the authenticated identity. An identity without a profile row has no
// access; profiles only come from explicit provisioning.
func GetSession(c *gin.Context, pool *pgxpool.Pool) {
	userID := c.GetString("userId")

	var profile models.Profile
	err := pool.QueryRow(context.Background(),
		"SELECT id, full_name, email, role, specialties, phone, address, created_at, updated_at FROM profiles WHERE id = $1",
		userID).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.Role,
		&profile.Specialties,
		&profile.Phone,
		&profile.Address,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			log.Error().Err(err).Msg("failed to fetch profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Logout implements POST /api/v1/auth/logout. Sessions are stateless JWTs;
// the client discards the token and expiry takes care of the rest.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
