package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// Profile is a staff identity record, distinct from a Patient.
type Profile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Specialties []string  `json:"specialties"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateDoctorRequest provisions the authentication identity together with
// the profile row.
type CreateDoctorRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	FullName    string   `json:"full_name" binding:"required"`
	Specialties []string `json:"specialties"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
}

type UpdateDoctorRequest struct {
	FullName    string   `json:"full_name" binding:"required"`
	Specialties []string `json:"specialties"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
}
