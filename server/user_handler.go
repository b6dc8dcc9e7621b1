package server

import (
	"net/http"

	"github.com/StavanShah1402/Music-Recommendation-System/logger"
)

// GetUserProfileHandler returns the authenticated user's record together
// with their current listening history. Requires AuthMiddleware.
func (h *APIHandler) GetUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	user, err := h.userRepo.GetUserByID(userID)
	if err != nil {
		logger.Error("[Profile] failed to load user",
			logger.Int64("userId", userID), logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to get user profile")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	history, err := h.history.History(r.Context(), userID)
	if err != nil {
		logger.Warn("[Profile] failed to load listening history",
			logger.Int64("userId", userID), logger.ErrorField(err))
	} else {
		user.ListeningActivity = history
	}

	writeJSON(w, http.StatusOK, user)
}
