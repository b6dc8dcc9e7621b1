package repository

import (
	"database/sql"
	"fmt"

	"github.com/StavanShah1402/Music-Recommendation-System/model"
)

// TrackRepository defines the interface for track data operations.
type TrackRepository interface {
	CreateTrack(track *model.Track) (int64, error)
	GetTrackByTrackID(trackID string) (*model.Track, error)
}

// mysqlTrackRepository implements TrackRepository for MySQL.
type mysqlTrackRepository struct {
	DB *sql.DB
}

// NewMySQLTrackRepository creates a new instance of mysqlTrackRepository.
func NewMySQLTrackRepository(db *sql.DB) TrackRepository {
	return &mysqlTrackRepository{DB: db}
}

const trackColumns = "id, track_id, track_name, duration, primary_artists, language, track_url, track_image, download_url, spotify_track_id, " +
	"acousticness, danceability, duration_ms, energy, instrumentalness, `key`, liveness, loudness, mode, speechiness, tempo, time_signature, valence, " +
	"play_count, created_at, updated_at"

// CreateTrack adds a new track to the database.
func (r *mysqlTrackRepository) CreateTrack(track *model.Track) (int64, error) {
	query := "INSERT INTO music (track_id, track_name, duration, primary_artists, language, track_url, track_image, download_url, spotify_track_id, " +
		"acousticness, danceability, duration_ms, energy, instrumentalness, `key`, liveness, loudness, mode, speechiness, tempo, time_signature, valence, play_count) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	stmt, err := r.DB.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement for CreateTrack: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(
		track.TrackID, track.TrackName, track.Duration, track.PrimaryArtists, track.Language,
		track.TrackURL, track.TrackImage, track.DownloadURL, track.SpotifyTrackID,
		track.Acousticness, track.Danceability, track.DurationMS, track.Energy, track.Instrumentalness,
		track.Key, track.Liveness, track.Loudness, track.Mode, track.Speechiness, track.Tempo,
		track.TimeSignature, track.Valence, track.PlayCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to execute CreateTrack: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for CreateTrack: %w", err)
	}
	return id, nil
}

// GetTrackByTrackID retrieves a track by its external catalog identifier.
func (r *mysqlTrackRepository) GetTrackByTrackID(trackID string) (*model.Track, error) {
	query := "SELECT " + trackColumns + " FROM music WHERE track_id = ?"
	row := r.DB.QueryRow(query, trackID)

	track := &model.Track{}
	err := row.Scan(
		&track.ID, &track.TrackID, &track.TrackName, &track.Duration, &track.PrimaryArtists, &track.Language,
		&track.TrackURL, &track.TrackImage, &track.DownloadURL, &track.SpotifyTrackID,
		&track.Acousticness, &track.Danceability, &track.DurationMS, &track.Energy, &track.Instrumentalness,
		&track.Key, &track.Liveness, &track.Loudness, &track.Mode, &track.Speechiness, &track.Tempo,
		&track.TimeSignature, &track.Valence, &track.PlayCount, &track.CreatedAt, &track.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Track not found
		}
		return nil, fmt.Errorf("failed to scan track by track_id %s: %w", trackID, err)
	}
	return track, nil
}
