package db

import (
	"database/sql"
	"fmt"

	"github.com/StavanShah1402/Music-Recommendation-System/config"
	"github.com/StavanShah1402/Music-Recommendation-System/logger"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database",
		logger.String("host", cfg.DBHost),
		logger.String("database", cfg.DBName))
	return nil
}

// InitDB initializes the database schema, creating tables if they don't exist.
func InitDB() error {
	if err := createUsersTable(); err != nil {
		return err
	}
	if err := createMusicTable(); err != nil {
		return err
	}
	logger.Info("Database initialization completed")
	return nil
}

func createUsersTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		gender VARCHAR(20),
		age INT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`
	_, err := DB.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

func createMusicTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS music (
		id INT AUTO_INCREMENT PRIMARY KEY,
		track_id VARCHAR(100) NOT NULL UNIQUE,
		track_name VARCHAR(255) NOT NULL,
		duration INT,
		primary_artists VARCHAR(512),
		language VARCHAR(50),
		track_url VARCHAR(1024),
		track_image VARCHAR(1024),
		download_url VARCHAR(1024),
		spotify_track_id VARCHAR(100),
		acousticness DOUBLE,
		danceability DOUBLE,
		duration_ms INT,
		energy DOUBLE,
		instrumentalness DOUBLE,
		` + "`key`" + ` INT,
		liveness DOUBLE,
		loudness DOUBLE,
		mode INT,
		speechiness DOUBLE,
		tempo DOUBLE,
		time_signature INT,
		valence DOUBLE,
		play_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`
	_, err := DB.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create music table: %w", err)
	}
	return nil
}
