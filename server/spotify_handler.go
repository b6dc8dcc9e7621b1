package server

import (
	"errors"
	"net/http"

	"github.com/StavanShah1402/Music-Recommendation-System/core/spotify"
	"github.com/StavanShah1402/Music-Recommendation-System/logger"
)

// SongAudioFeaturesHandler resolves a song name to the audio features of
// the first catalog match.
func (h *APIHandler) SongAudioFeaturesHandler(w http.ResponseWriter, r *http.Request) {
	songName := r.URL.Query().Get("songName")
	if songName == "" {
		http.Error(w, "songName query parameter is required", http.StatusBadRequest)
		return
	}

	features, err := h.features.TrackAudioFeatures(r.Context(), songName)
	if err != nil {
		// The token-refresh path deliberately ends the request without a
		// features payload; the caller is expected to try again.
		if errors.Is(err, spotify.ErrTokenRefreshed) {
			logger.Warn("[AudioFeatures] provider token refreshed, request not served",
				logger.String("songName", songName))
			return
		}
		logger.Error("[AudioFeatures] lookup failed",
			logger.String("songName", songName), logger.ErrorField(err))
		http.Error(w, "Error searching for song or getting audio features", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, features)
}
