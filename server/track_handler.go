package server

import (
	"encoding/json"
	"html"
	"net/http"
	"strings"

	"github.com/StavanShah1402/Music-Recommendation-System/logger"
	"github.com/StavanShah1402/Music-Recommendation-System/model"
)

// Catalog submissions carry multi-variant link lists; these are the
// variants stored (medium-resolution image, highest-quality download).
const (
	imageVariantIndex    = 2
	downloadVariantIndex = 4
)

// linkVariant is one entry of a multi-resolution or multi-quality link list.
type linkVariant struct {
	Quality string `json:"quality,omitempty"`
	Link    string `json:"link"`
}

// musicData is the catalog submission payload.
type musicData struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Duration       int           `json:"duration"`
	PrimaryArtists string        `json:"primaryArtists"`
	Language       string        `json:"language"`
	URL            string        `json:"url"`
	Image          []linkVariant `json:"image"`
	DownloadURL    []linkVariant `json:"downloadUrl"`
	URI            string        `json:"uri"`

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
}

// AddMusicHandler stores a new catalog entry. Submitting a track whose
// ID already exists is a no-op: the existing record wins and the
// response body stays empty, so callers cannot tell "created" from
// "already existed".
func (h *APIHandler) AddMusicHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		MusicData musicData `json:"musicData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	md := req.MusicData

	if md.ID == "" {
		http.Error(w, "musicData.id is required", http.StatusBadRequest)
		return
	}

	existing, err := h.trackRepo.GetTrackByTrackID(md.ID)
	if err != nil {
		logger.Error("[AddMusic] failed to look up track", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to store music details")
		return
	}
	if existing != nil {
		logger.Debug("[AddMusic] track already exists", logger.String("trackId", md.ID))
		w.WriteHeader(http.StatusOK)
		return
	}

	if len(md.Image) <= imageVariantIndex || len(md.DownloadURL) <= downloadVariantIndex {
		http.Error(w, "musicData image or downloadUrl variants missing", http.StatusBadRequest)
		return
	}

	// The provider URI is colon-delimited, e.g. "spotify:track:<id>".
	var spotifyTrackID string
	if parts := strings.Split(md.URI, ":"); len(parts) > 2 {
		spotifyTrackID = parts[2]
	}

	track := &model.Track{
		TrackID:        md.ID,
		TrackName:      html.UnescapeString(md.Name),
		Duration:       md.Duration,
		PrimaryArtists: md.PrimaryArtists,
		Language:       md.Language,
		TrackURL:       md.URL,
		TrackImage:     md.Image[imageVariantIndex].Link,
		DownloadURL:    md.DownloadURL[downloadVariantIndex].Link,
		SpotifyTrackID: spotifyTrackID,

		Acousticness:     md.Acousticness,
		Danceability:     md.Danceability,
		DurationMS:       md.DurationMS,
		Energy:           md.Energy,
		Instrumentalness: md.Instrumentalness,
		Key:              md.Key,
		Liveness:         md.Liveness,
		Loudness:         md.Loudness,
		Mode:             md.Mode,
		Speechiness:      md.Speechiness,
		Tempo:            md.Tempo,
		TimeSignature:    md.TimeSignature,
		Valence:          md.Valence,

		PlayCount: 0,
	}

	if _, err := h.trackRepo.CreateTrack(track); err != nil {
		logger.Error("[AddMusic] failed to store track",
			logger.String("trackId", md.ID), logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to store music details")
		return
	}

	logger.Info("[AddMusic] track stored", logger.String("trackId", md.ID))
	writeMessage(w, http.StatusOK, "Music Details stored successfully")
}
