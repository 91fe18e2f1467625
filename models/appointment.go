package models

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the appointment lifecycle states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

type Appointment struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Specialty       string    `json:"specialty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	PatientID       *string   `json:"patient_id"`
	DoctorID        *string   `json:"doctor_id"`
	DoctorName      *string   `json:"doctor_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingRequest is the public booking form payload. Date and time arrive as
// separate fields and are combined into one timestamp on insert.
type BookingRequest struct {
	FullName  string `json:"full_name" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty" binding:"required"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

// StaffAppointmentRequest is the staff-created variant: the appointment is
// confirmed immediately and linked to a patient record, either an existing
// one picked by id or one matched/created by email.
type StaffAppointmentRequest struct {
	PatientID string `json:"patient_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty" binding:"required"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type AppointmentUpdate struct {
	DoctorID *string `json:"doctor_id"`
	Status   *string `json:"status"`
}
