package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"clinica_back_end_go/models"
	"clinica_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

// Specialties offered by the clinic. Booking requests and doctor profiles
// are tagged with one of these.
var Specialties = []string{
	"Consulta General",
	"Odontología",
	"Cardiología",
	"Pediatría",
	"Traumatología",
	"Psicología",
}

// ValidID reports whether s is a well-formed uuid. Malformed ids are
// rejected up front instead of surfacing as postgres cast errors.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func ValidSpecialty(s string) bool {
	for _, sp := range Specialties {
		if sp == s {
			return true
		}
	}
	return false
}

// GenerateTimeSlots returns the bookable half-hour slots across the business
// hours window, 09:00 through 17:00.
func GenerateTimeSlots() []string {
	var slots []string
	for h := 9; h <= 17; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		if h < 17 {
			slots = append(slots, fmt.Sprintf("%02d:30", h))
		}
	}
	return slots
}

// ExcludeBookedSlots filters out slots already taken.
func ExcludeBookedSlots(slots []string, booked map[string]bool) []string {
	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !booked[slot] {
			free = append(free, slot)
		}
	}
	return free
}

// FilterDoctorsBySpecialty keeps doctors whose specialties include the given
// one. Doctors with no specialties set are offered for every specialty.
func FilterDoctorsBySpecialty(doctors []models.Profile, specialty string) []models.Profile {
	if specialty == "" {
		return doctors
	}
	filtered := make([]models.Profile, 0, len(doctors))
	for _, doc := range doctors {
		if len(doc.Specialties) == 0 {
			filtered = append(filtered, doc)
			continue
		}
		for _, s := range doc.Specialties {
			if s == specialty {
				filtered = append(filtered, doc)
				break
			}
		}
	}
	return filtered
}

// CombineDateTime merges a "2006-01-02" date and a "15:04" time of day into
// one timestamp in the server's local time.
func CombineDateTime(dateStr, timeStr string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %v", err)
	}
	clock, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %v", err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}

// GetSpecialties implements GET /api/v1/specialties
func GetSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": Specialties})
}

// GetDoctors implements GET /api/v1/doctors for the public booking flow.
// Only the fields the wizard shows are returned.
func GetDoctors(c *gin.Context, pool *pgxpool.Pool) {
	specialty := c.DefaultQuery("specialty", "")

	rows, err := pool.Query(context.Background(),
		"SELECT id, full_name, specialties FROM profiles WHERE role = 'doctor' ORDER BY full_name")
	if err != nil {
		log.Error().Err(err).Msg("failed to query doctors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	var doctors []models.Profile
	for rows.Next() {
		var doc models.Profile
		if err := rows.Scan(&doc.ID, &doc.FullName, &doc.Specialties); err != nil {
			log.Error().Err(err).Msg("failed to scan doctor row")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		doc.Role = models.RoleDoctor
		doctors = append(doctors, doc)
	}

	c.JSON(http.StatusOK, FilterDoctorsBySpecialty(doctors, specialty))
}

// GetTimeSlots implements GET /api/v1/slots. Without a doctor it returns the
// full business-hours grid; with doctorId and date it removes slots already
// taken by that doctor's non-cancelled appointments.
func GetTimeSlots(c *gin.Context, pool *pgxpool.Pool) {
	doctorID := c.DefaultQuery("doctorId", "")
	dateStr := c.DefaultQuery("date", "")

	slots := GenerateTimeSlots()
	if doctorID == "" || dateStr == "" {
		c.JSON(http.StatusOK, gin.H{"slots": slots})
		return
	}

	if !ValidID(doctorID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	dayStart, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := pool.Query(context.Background(),
		"SELECT appointment_date FROM appointments WHERE doctor_id = $1 AND appointment_date >= $2 AND appointment_date < $3 AND status != 'cancelled'",
		doctorID, dayStart, dayEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to query booked slots")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	booked := make(map[string]bool)
	for rows.Next() {
		var when time.Time
		if err := rows.Scan(&when); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		booked[when.In(time.Local).Format("15:04")] = true
	}

	c.JSON(http.StatusOK, gin.H{"slots": ExcludeBookedSlots(slots, booked)})
}

// CreateBooking implements POST /api/v1/appointments, the public booking
// submission. The row is inserted with status pending; staff confirm it
// later from the dashboard.
func CreateBooking(c *gin.Context, pool *pgxpool.Pool) {
	var req models.BookingRequest
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

	var doctorID interface{}
	if req.DoctorID != "" {
		if !ValidID(req.DoctorID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
			return
		}
		doctorID = req.DoctorID
	}

	var appointmentID string
	err = pool.QueryRow(context.Background(), `
		INSERT INTO appointments (full_name, email, phone, specialty, appointment_date, notes, status, doctor_id)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7)
		RETURNING id`,
		req.FullName, req.Email, req.Phone, req.Specialty, when, req.Notes, doctorID).Scan(&appointmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	// Best-effort side effects: the booking stands even if these fail.
	if err := validators.SendBookingReceipt(req.Email, req.FullName, req.Specialty, when); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("failed to send booking receipt")
	}
	BroadcastAppointmentEvent("appointment_created", appointmentID, req.Specialty, models.StatusPending)

	c.JSON(http.StatusCreated, gin.H{
		"success": "true",
		"id":      appointmentID,
		"message": "Appointment requested successfully",
	})
}
