package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func InitDatabase() (*pgxpool.Pool, error) {

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, relying on environment")
	}
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")
	databaseName := os.Getenv("DATABASE_NAME")

	config, err := pgxpool.ParseConfig(" host=" + host + " port=" + port + " user=" + user + " password=" + password + " database=" + databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	conn, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Create tables
	sqlQueries := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS profiles (
			id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			full_name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			hashed_password VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'doctor')),
			specialties TEXT[] NOT NULL DEFAULT '{}',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			address VARCHAR(200) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS patients (
			id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			full_name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			id_number VARCHAR(50) NOT NULL DEFAULT '',
			blood_type VARCHAR(10) NOT NULL DEFAULT '',
			address VARCHAR(200) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			full_name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			specialty VARCHAR(50) NOT NULL,
			appointment_date TIMESTAMPTZ NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'confirmed', 'cancelled')),
			patient_id uuid REFERENCES patients(id) ON DELETE SET NULL,
			doctor_id uuid REFERENCES profiles(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, query := range sqlQueries {
		_, err = conn.Exec(context.Background(), query)
		if err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	if err := ensureAdminAccount(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

// ensureAdminAccount bootstraps the first admin profile from ADMIN_EMAIL and
// ADMIN_PASSWORD. Every other staff identity is created through the doctor
// provisioning endpoint; unknown identities never get a default role.
func ensureAdminAccount(conn *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var existing string
	err := conn.QueryRow(context.Background(), "SELECT id FROM profiles WHERE email = $1", email).Scan(&existing)
	if err == nil {
		return nil
	}
	if err.Error() != "no rows in result set" {
		return fmt.Errorf("failed to check admin account: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %v", err)
	}

	_, err = conn.Exec(context.Background(),
		"INSERT INTO profiles (full_name, email, hashed_password, role) VALUES ($1, $2, $3, 'admin')",
		"Administrador", email, hashedPassword)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %v", err)
	}
	log.Info().Str("email", email).Msg("bootstrap admin account created")
	return nil
}
