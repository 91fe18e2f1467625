package models

import "time"

type Patient struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IDNumber  string    `json:"id_number"`
	BloodType string    `json:"blood_type"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type PatientRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"id_number"`
	BloodType string `json:"blood_type"`
	Address   string `json:"address"`
}
