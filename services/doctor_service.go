package services

import (
	"context"
	"net/http"

	"clinica_back_end_go/models"
	"clinica_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func emailExists(pool *pgxpool.Pool, table, email string) (bool, error) {
	var existingEmail string
	err := pool.QueryRow(context.Background(), "SELECT email FROM "+table+" WHERE email = $1", email).Scan(&existingEmail)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetAdminDoctors implements GET /api/v1/admin/doctors, the full profile
// rows for the management screen.
func GetAdminDoctors(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(),
		"SELECT id, full_name, email, role, specialties, phone, address, created_at, updated_at FROM profiles WHERE role = 'doctor' ORDER BY full_name")
	if err != nil {
		log.Error().Err(err).Msg("failed to query doctors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	var doctors []models.Profile
	for rows.Next() {
		var doc models.Profile
		err := rows.Scan(&doc.ID, &doc.FullName, &doc.Email, &doc.Role, &doc.Specialties,
			&doc.Phone, &doc.Address, &doc.CreatedAt, &doc.UpdatedAt)
		if err != nil {
			log.Error().Err(err).Msg("failed to scan doctor row")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		doctors = append(doctors, doc)
	}

	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor implements POST /api/v1/admin/doctors. Creating a doctor
// provisions the authentication identity and the profile row together: the
// credentials and the profile land in one insert, so there is no window
// where one exists without the other.
func CreateDoctor(c *gin.Context, pool *pgxpool.Pool) {
	var req models.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, password and full name are required", "details": err.Error()})
		return
	}

	exists, err := emailExists(pool, "profiles", req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	specialties := req.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	var doctorID string
	err = pool.QueryRow(context.Background(), `
		INSERT INTO profiles (full_name, email, hashed_password, role, specialties, phone, address)
		VALUES ($1, $2, $3, 'doctor', $4, $5, $6)
		RETURNING id`,
		req.FullName, req.Email, hashedPassword, specialties, req.Phone, req.Address).Scan(&doctorID)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert doctor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if err := validators.SendDoctorWelcome(req.Email, req.FullName); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("failed to send welcome email")
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"doctor": models.Profile{
			ID:          doctorID,
			FullName:    req.FullName,
			Email:       req.Email,
			Role:        models.RoleDoctor,
			Specialties: specialties,
			Phone:       req.Phone,
			Address:     req.Address,
		},
	})
}

// UpdateDoctor implements PUT /api/v1/admin/doctors/:id.
func UpdateDoctor(c *gin.Context, pool *pgxpool.Pool) {
	doctorID := c.Param("doctorId")
	if !ValidID(doctorID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	var req models.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	specialties := req.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	tag, err := pool.Exec(context.Background(), `
		UPDATE profiles SET full_name = $1, specialties = $2, phone = $3, address = $4, updated_at = NOW()
		WHERE id = $5 AND role = 'doctor'`,
		req.FullName, specialties, req.Phone, req.Address, doctorID)
	if err != nil {
		log.Error().Err(err).Msg("failed to update doctor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Doctor updated successfully"})
}

// DeleteDoctor implements DELETE /api/v1/admin/doctors/:id. Removing the
// profile removes the login as well; appointment links null out via the
// foreign key.
func DeleteDoctor(c *gin.Context, pool *pgxpool.Pool) {
	doctorID := c.Param("doctorId")
	if !ValidID(doctorID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	tag, err := pool.Exec(context.Background(), "DELETE FROM profiles WHERE id = $1 AND role = 'doctor'", doctorID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete doctor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Doctor deleted successfully"})
}
