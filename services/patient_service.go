package services

import (
	"context"
	"net/http"

	"clinica_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

const patientColumns = "id, full_name, email, phone, id_number, blood_type, address, created_at"

// GetPatients implements GET /api/v1/admin/patients.
func GetPatients(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(),
		"SELECT "+patientColumns+" FROM patients ORDER BY created_at DESC")
	if err != nil {
		log.Error().Err(err).Msg("failed to query patients")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		var p models.Patient
		err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.IDNumber, &p.BloodType, &p.Address, &p.CreatedAt)
		if err != nil {
			log.Error().Err(err).Msg("failed to scan patient row")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		patients = append(patients, p)
	}

	c.JSON(http.StatusOK, patients)
}

// GetPatientById implements GET /api/v1/admin/patients/:id.
func GetPatientById(c *gin.Context, pool *pgxpool.Pool) {
	patientID := c.Param("patientId")
	if !ValidID(patientID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var p models.Patient
	err := pool.QueryRow(context.Background(),
		"SELECT "+patientColumns+" FROM patients WHERE id = $1", patientID).Scan(
		&p.ID, &p.FullName, &p.Email, &p.Phone, &p.IDNumber, &p.BloodType, &p.Address, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		} else {
			log.Error().Err(err).Msg("failed to fetch patient")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetPatientAppointments implements GET /api/v1/admin/patients/:id/appointments,
// the visit history on the patient detail screen.
func GetPatientAppointments(c *gin.Context, pool *pgxpool.Pool) {
	patientID := c.Param("patientId")
	if !ValidID(patientID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	rows, err := pool.Query(context.Background(), `
		SELECT `+appointmentColumns+`
		FROM appointments
		LEFT JOIN profiles ON appointments.doctor_id = profiles.id
		WHERE appointments.patient_id = $1
		ORDER BY appointments.appointment_date DESC`, patientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to query patient appointments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	appointments, err := scanAppointments(rows)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan appointments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CreatePatient implements POST /api/v1/admin/patients. Email is the
// de-duplication key: a second record with the same email is rejected.
func CreatePatient(c *gin.Context, pool *pgxpool.Pool) {
	var req models.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	exists, err := emailExists(pool, "patients", req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	var patientID string
	err = pool.QueryRow(context.Background(), `
		INSERT INTO patients (full_name, email, phone, id_number, blood_type, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		req.FullName, req.Email, req.Phone, req.IDNumber, req.BloodType, req.Address).Scan(&patientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": "true", "id": patientID, "message": "Patient created successfully"})
}

// UpdatePatient implements PUT /api/v1/admin/patients/:id.
func UpdatePatient(c *gin.Context, pool *pgxpool.Pool) {
	patientID := c.Param("patientId")
	if !ValidID(patientID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var req models.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	tag, err := pool.Exec(context.Background(), `
		UPDATE patients SET full_name = $1, email = $2, phone = $3, id_number = $4, blood_type = $5, address = $6
		WHERE id = $7`,
		req.FullName, req.Email, req.Phone, req.IDNumber, req.BloodType, req.Address, patientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to update patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Patient updated successfully"})
}

// DeletePatient implements DELETE /api/v1/admin/patients/:id.
func DeletePatient(c *gin.Context, pool *pgxpool.Pool) {
	patientID := c.Param("patientId")
	if !ValidID(patientID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	tag, err := pool.Exec(context.Background(), "DELETE FROM patients WHERE id = $1", patientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Patient deleted successfully"})
}
