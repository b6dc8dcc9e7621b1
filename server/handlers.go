package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/StavanShah1402/Music-Recommendation-System/config"
	"github.com/StavanShah1402/Music-Recommendation-System/core/spotify"
	"github.com/StavanShah1402/Music-Recommendation-System/logger"
	"github.com/StavanShah1402/Music-Recommendation-System/repository"
)

// AudioFeaturesProvider fetches audio features for a track name from the
// external metadata provider.
type AudioFeaturesProvider interface {
	TrackAudioFeatures(ctx context.Context, name string) (*spotify.AudioFeatures, error)
}

// HistoryStore is the per-user capped listening-history store.
type HistoryStore interface {
	RecordPlay(ctx context.Context, userID int64, trackID string) ([]string, error)
	History(ctx context.Context, userID int64) ([]string, error)
	LastPlayed(ctx context.Context, userID int64) (string, error)
}

// APIHandler handles all API requests.
type APIHandler struct {
	userRepo  repository.UserRepository
	trackRepo repository.TrackRepository
	history   HistoryStore
	features  AudioFeaturesProvider
	cfg       *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	userRepo repository.UserRepository,
	trackRepo repository.TrackRepository,
	history HistoryStore,
	features AudioFeaturesProvider,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		userRepo:  userRepo,
		trackRepo: trackRepo,
		history:   history,
		features:  features,
		cfg:       cfg,
	}
}

// HealthHandler reports server health.
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"health": "100%"})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

// writeMessage writes a {"message": ...} JSON response.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
