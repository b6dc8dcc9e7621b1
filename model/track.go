package model

import "time"

// Track represents a catalog entry in the music library, including the
// audio features captured when it was first submitted.
type Track struct {
	ID             int64  `json:"id"`
	TrackID        string `json:"track_id"` // external catalog identifier, unique
	TrackName      string `json:"track_name"`
	Duration       int    `json:"duration"` // seconds
	PrimaryArtists string `json:"primary_artists"`
	Language       string `json:"language"`
	TrackURL       string `json:"track_url"`
	TrackImage     string `json:"track_image"`
	DownloadURL    string `json:"download_url"`
	SpotifyTrackID string `json:"spotify_track_id"`

	Acousticness     float64 `json:"acousticness"`
	Danceability     float64 `json:"danceability"`
	DurationMS       int     `json:"duration_ms"`
	Energy           float64 `json:"energy"`
	Instrumentalness float64 `json:"instrumentalness"`
	Key              int     `json:"key"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature"`
	Valence          float64 `json:"valence"`

	PlayCount int       `json:"play_count"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
