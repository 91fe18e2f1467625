package services

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

type DashboardStats struct {
	AppointmentsToday   int `json:"appointments_today"`
	PendingAppointments int `json:"pending_appointments"`
	Doctors             int `json:"doctors"`
	Patients            int `json:"patients"`
}

// GetDashboardStats implements GET /api/v1/admin/dashboard/stats.
func GetDashboardStats(c *gin.Context, pool *pgxpool.Pool) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var stats DashboardStats
	ctx := context.Background()

	err := pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM appointments WHERE appointment_date >= $1 AND appointment_date < $2",
		dayStart, dayEnd).Scan(&stats.AppointmentsToday)
	if err == nil {
		err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM appointments WHERE status = 'pending'").Scan(&stats.PendingAppointments)
	}
	if err == nil {
		err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM profiles WHERE role = 'doctor'").Scan(&stats.Doctors)
	}
	if err == nil {
		err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM patients").Scan(&stats.Patients)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to query dashboard stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUpcomingAppointments implements GET /api/v1/admin/dashboard/upcoming,
// the next five appointments for the dashboard widget.
func GetUpcomingAppointments(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(), `
		SELECT `+appointmentColumns+`
		FROM appointments
		LEFT JOIN profiles ON appointments.doctor_id = profiles.id
		WHERE appointments.appointment_date >= NOW()
		ORDER BY appointments.appointment_date ASC
		LIMIT 5`)
	if err != nil {
		log.Error().Err(err).Msg("failed to query upcoming appointments")
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

// UnderConstruction backs the administration, help and settings sections
// that only exist as placeholders.
func UnderConstruction(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "under construction"})
}
