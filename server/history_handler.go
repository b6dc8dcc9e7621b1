package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/StavanShah1402/Music-Recommendation-System/cache"
	"github.com/StavanShah1402/Music-Recommendation-System/logger"
)

// AddToListeningHistoryHandler records a play event and returns the
// resulting history sequence, oldest first.
func (h *APIHandler) AddToListeningHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		CurrTrackID string `json:"currTrackId"`
		CurrUserID  int64  `json:"currUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CurrTrackID == "" || req.CurrUserID == 0 {
		http.Error(w, "currTrackId and currUserId are required", http.StatusBadRequest)
		return
	}

	history, err := h.history.RecordPlay(r.Context(), req.CurrUserID, req.CurrTrackID)
	if err != nil {
		logger.Error("[History] failed to record play",
			logger.Int64("userId", req.CurrUserID),
			logger.String("trackId", req.CurrTrackID),
			logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": history})
}

// GetLastListenedMusicHandler returns the most recently played track ID
// for a user. An empty history is reported as an internal error, the
// behavior clients already depend on.
func (h *APIHandler) GetLastListenedMusicHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("currUserId"), 10, 64)
	if err != nil {
		http.Error(w, "currUserId query parameter is required", http.StatusBadRequest)
		return
	}

	last, err := h.history.LastPlayed(r.Context(), userID)
	if err != nil {
		if errors.Is(err, cache.ErrEmptyHistory) {
			logger.Warn("[History] no plays recorded", logger.Int64("userId", userID))
		} else {
			logger.Error("[History] failed to read last play",
				logger.Int64("userId", userID), logger.ErrorField(err))
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"lastListenedMusic": last})
}
