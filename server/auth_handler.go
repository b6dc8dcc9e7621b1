package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/StavanShah1402/Music-Recommendation-System/core/auth"
	"github.com/StavanShah1402/Music-Recommendation-System/logger"
	"github.com/StavanShah1402/Music-Recommendation-System/model"
	"github.com/StavanShah1402/Music-Recommendation-System/repository"
)

// SignupRequest represents the signup request body.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler handles user registration requests.
func (h *APIHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Username, email and password are required", http.StatusBadRequest)
		return
	}

	existing, err := h.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		logger.Error("[Signup] failed to look up user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing != nil {
		logger.Warn("[Signup] email already registered", logger.String("email", req.Email))
		writeMessage(w, http.StatusConflict, "User already exists. Please Login")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("[Signup] failed to hash password", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Gender:       req.Gender,
		Age:          req.Age,
	}

	if _, err := h.userRepo.CreateUser(user); err != nil {
		// The unique index may still fire on a concurrent signup.
		if errors.Is(err, repository.ErrDuplicateUser) {
			logger.Warn("[Signup] email already registered", logger.String("email", req.Email))
			writeMessage(w, http.StatusConflict, "User already exists. Please Login")
			return
		}
		logger.Error("[Signup] failed to create user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	logger.Info("[Signup] user created", logger.String("email", req.Email))
	writeMessage(w, http.StatusCreated, "User details stored successfully")
}

// LoginHandler handles user login requests.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		logger.Error("[Login] failed to look up user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		logger.Warn("[Login] user not found", logger.String("email", req.Email))
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		logger.Warn("[Login] password verification failed", logger.String("email", req.Email))
		writeMessage(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("[Login] failed to generate token", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// A history-store outage should not block login; the history is
	// simply omitted from the response.
	history, err := h.history.History(r.Context(), user.ID)
	if err != nil {
		logger.Warn("[Login] failed to load listening history",
			logger.Int64("userId", user.ID), logger.ErrorField(err))
	} else {
		user.ListeningActivity = history
	}

	logger.Info("[Login] login success", logger.String("email", user.Email))

	writeJSON(w, http.StatusOK, struct {
		Message     string      `json:"message"`
		UserDeets   *model.User `json:"userDeets"`
		AccessToken string      `json:"accessToken"`
	}{
		Message:     "Login Success",
		UserDeets:   user,
		AccessToken: token,
	})
}

// VerifyTokenHandler verifies a bearer token and echoes its decoded claims.
func (h *APIHandler) VerifyTokenHandler(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		logger.Warn("[VerifyToken] invalid token", logger.ErrorField(err))
		writeMessage(w, http.StatusForbidden, "Invalid access token")
		return
	}

	writeJSON(w, http.StatusOK, claims)
}

// AuthMiddleware checks for a valid bearer token and injects the
// caller's identity into the request context.
func (h *APIHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "Access token missing")
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			writeMessage(w, http.StatusForbidden, "Invalid access token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, emailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <t>"
// header, or returns "".
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

type contextKey string

const (
	userIDKey contextKey = "userID"
	emailKey  contextKey = "email"
)

// GetUserIDFromContext extracts the user ID from the request context.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}
