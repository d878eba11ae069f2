package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the CREATE TABLE statements for every table the service
// uses. Statements are idempotent so they can run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS halls (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		seat_rows INT UNSIGNED NOT NULL,
		seat_cols INT UNSIGNED NOT NULL,
		seats_per_bench INT UNSIGNED NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_halls_created (created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS seats (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		hall_id BIGINT UNSIGNED NOT NULL,
		row_no INT UNSIGNED NOT NULL,
		col_no INT UNSIGNED NOT NULL,
		seat_no INT UNSIGNED NOT NULL,
		register_number VARCHAR(64) NULL,
		student_name VARCHAR(255) NULL,
		department VARCHAR(255) NULL,
		semester VARCHAR(64) NULL,
		is_assigned BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE KEY uq_seats_position (hall_id, row_no, col_no, seat_no),
		INDEX idx_seats_assigned (hall_id, is_assigned)
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		register_number VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		department VARCHAR(255) NOT NULL,
		semester VARCHAR(64) NOT NULL,
		class_section VARCHAR(64) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_students_register (register_number),
		INDEX idx_students_dept_sem (department, semester)
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_departments_name (name)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'VIEWER',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_refresh_hash (token_hash)
	)`,
}

// EnsureSchema creates any missing tables and indexes. The service runs it
// once at startup before serving requests.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
