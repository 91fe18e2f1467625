package services

import (
	"context"
	"net/http"
	"time"

	"clinica_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

func isNoRows(err error) bool {
	return err != nil && err.Error() == "no rows in result set"
}

const appointmentColumns = `
	appointments.id,
	appointments.full_name,
	appointments.email,
	appointments.phone,
	appointments.specialty,
	appointments.appointment_date,
	appointments.notes,
	appointments.status,
	appointments.patient_id,
	appointments.doctor_id,
	profiles.full_name AS doctor_name,
	appointments.created_at`

func scanAppointments(rows pgx.Rows) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Specialty,
			&a.AppointmentDate, &a.Notes, &a.Status, &a.PatientID, &a.DoctorID,
			&a.DoctorName, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// GetAppointments implements GET /api/v1/admin/appointments: every
// appointment with the assigned doctor's name joined in, newest first.
func GetAppointments(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(), `
		SELECT `+appointmentColumns+`
		FROM appointments
		LEFT JOIN profiles ON appointments.doctor_id = profiles.id
		ORDER BY appointments.appointment_date DESC`)
	if err != nil {
		log.Error().Err(err).Msg("failed to query appointments")
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

// GetTodaysAppointments implements GET /api/v1/admin/appointments/today,
// the dashboard's day list ordered by time.
func GetTodaysAppointments(c *gin.Context, pool *pgxpool.Pool) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := pool.Query(context.Background(), `
		SELECT `+appointmentColumns+`
		FROM appointments
		LEFT JOIN profiles ON appointments.doctor_id = profiles.id
		WHERE appointments.appointment_date >= $1 AND appointments.appointment_date < $2
		ORDER BY appointments.appointment_date ASC`, dayStart, dayEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to query today's appointments")
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

// CreateStaffAppointment implements POST /api/v1/admin/appointments. Staff
// bookings are confirmed up front and always linked to a patient record:
// an existing one by id, or matched/created by email inside the same
// transaction as the appointment insert.
func CreateStaffAppointment(c *gin.Context, pool *pgxpool.Pool) {
	var req models.StaffAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if !ValidSpecialty(req.Specialty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown specialty"})
		return
	}

	when, err := CombineDateTime(req.Date, req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PatientID == "" && (req.FullName == "" || req.Email == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name and email are required for a new patient"})
		return
	}
	if req.PatientID != "" && !ValidID(req.PatientID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown patient"})
		return
	}
	if req.DoctorID != "" && !ValidID(req.DoctorID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	conn, err := pool.Acquire(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire connection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer conn.Release()

	tx, err := conn.Begin(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer tx.Rollback(context.Background())

	patientID := req.PatientID
	fullName := req.FullName
	email := req.Email
	phone := req.Phone

	if patientID == "" {
		patientID, err = findOrCreatePatient(tx, req.FullName, req.Email, req.Phone)
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve patient")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
	} else {
		err = tx.QueryRow(context.Background(),
			"SELECT full_name, email, phone FROM patients WHERE id = $1", patientID).Scan(&fullName, &email, &phone)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown patient"})
			return
		}
	}

	var doctorID interface{}
	if req.DoctorID != "" {
		doctorID = req.DoctorID
	}

	var appointmentID string
	err = tx.QueryRow(context.Background(), `
		INSERT INTO appointments (full_name, email, phone, specialty, appointment_date, notes, status, patient_id, doctor_id)
		VALUES ($1, $2, $3, $4, $5, $6, 'confirmed', $7, $8)
		RETURNING id`,
		fullName, email, phone, req.Specialty, when, req.Notes, patientID, doctorID).Scan(&appointmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert staff appointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if err := tx.Commit(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to commit staff appointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	BroadcastAppointmentEvent("appointment_created", appointmentID, req.Specialty, models.StatusConfirmed)
	c.JSON(http.StatusCreated, gin.H{"success": "true", "id": appointmentID, "patient_id": patientID})
}

// rowQuerier is the slice of pgx.Tx the patient lookup needs.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// findOrCreatePatient reuses a patient matched by email or inserts a new
// row, inside the caller's transaction. Email is the de-duplication key; a
// failed insert propagates so the caller rolls the whole transaction back.
func findOrCreatePatient(q rowQuerier, fullName, email, phone string) (string, error) {
	var patientID string
	err := q.QueryRow(context.Background(), "SELECT id FROM patients WHERE email = $1", email).Scan(&patientID)
	if err == nil {
		return patientID, nil
	}
	if !isNoRows(err) {
		return "", err
	}

	err = q.QueryRow(context.Background(),
		"INSERT INTO patients (full_name, email, phone) VALUES ($1, $2, $3) RETURNING id",
		fullName, email, phone).Scan(&patientID)
	return patientID, err
}

// UpdateAppointment implements PATCH /api/v1/admin/appointments/:id, used
// to assign a doctor or move the appointment through its lifecycle.
func UpdateAppointment(c *gin.Context, pool *pgxpool.Pool) {
	appointmentID := c.Param("appointmentId")
	if !ValidID(appointmentID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	var req models.AppointmentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.DoctorID == nil && req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if req.DoctorID != nil && *req.DoctorID != "" && !ValidID(*req.DoctorID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	query := "UPDATE appointments SET "
	params := []interface{}{}
	if req.DoctorID != nil {
		params = append(params, *req.DoctorID)
		query += "doctor_id = $1"
	}
	if req.Status != nil {
		if len(params) > 0 {
			params = append(params, *req.Status)
			query += ", status = $2"
		} else {
			params = append(params, *req.Status)
			query += "status = $1"
		}
	}
	params = append(params, appointmentID)
	if len(params) == 2 {
		query += " WHERE id = $2"
	} else {
		query += " WHERE id = $3"
	}

	tag, err := pool.Exec(context.Background(), query, params...)
	if err != nil {
		log.Error().Err(err).Msg("failed to update appointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	status := ""
	if req.Status != nil {
		status = *req.Status
	}
	BroadcastAppointmentEvent("appointment_updated", appointmentID, "", status)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment updated successfully"})
}

// ConfirmAppointment implements POST /api/v1/admin/appointments/:id/confirm:
// look up a patient by the appointment's email, reuse it if found, create it
// otherwise, then mark the appointment confirmed with the patient link. Both
// steps run in one transaction so a failed update rolls the insert back.
func ConfirmAppointment(c *gin.Context, pool *pgxpool.Pool) {
	appointmentID := c.Param("appointmentId")
	if !ValidID(appointmentID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	conn, err := pool.Acquire(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire connection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer conn.Release()

	tx, err := conn.Begin(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer tx.Rollback(context.Background())

	var fullName, email, phone string
	err = tx.QueryRow(context.Background(),
		"SELECT full_name, email, phone FROM appointments WHERE id = $1", appointmentID).Scan(&fullName, &email, &phone)
	if err != nil {
		if isNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		} else {
			log.Error().Err(err).Msg("failed to fetch appointment")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	patientID, err := findOrCreatePatient(tx, fullName, email, phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	_, err = tx.Exec(context.Background(),
		"UPDATE appointments SET status = 'confirmed', patient_id = $1 WHERE id = $2", patientID, appointmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm appointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if err := tx.Commit(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to commit confirmation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	BroadcastAppointmentEvent("appointment_confirmed", appointmentID, "", models.StatusConfirmed)
	c.JSON(http.StatusOK, gin.H{"success": true, "patient_id": patientID, "message": "Appointment confirmed and linked to patient"})
}

// DeleteAppointment implements DELETE /api/v1/admin/appointments/:id.
func DeleteAppointment(c *gin.Context, pool *pgxpool.Pool) {
	appointmentID := c.Param("appointmentId")
	if !ValidID(appointmentID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	tag, err := pool.Exec(context.Background(), "DELETE FROM appointments WHERE id = $1", appointmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete appointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment deleted successfully"})
}
