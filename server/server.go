package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StavanShah1402/Music-Recommendation-System/cache"
	"github.com/StavanShah1402/Music-Recommendation-System/config"
	"github.com/StavanShah1402/Music-Recommendation-System/core/auth"
	"github.com/StavanShah1402/Music-Recommendation-System/core/spotify"
	"github.com/StavanShah1402/Music-Recommendation-System/db"
	"github.com/StavanShah1402/Music-Recommendation-System/logger"
	"github.com/StavanShah1402/Music-Recommendation-System/repository"

	"github.com/gorilla/mux"
)

// Start initializes dependencies and runs the HTTP server until it
// receives SIGINT or SIGTERM.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	if cfg.AccessTokenSecret == "" {
		logger.Fatal("ACCESS_TOKEN_SECRET is not set")
	}
	auth.Init(cfg.AccessTokenSecret)

	if err := db.ConnectDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.DB.Close()

	if err := db.ConnectRedis(cfg); err != nil {
		logger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
	}
	defer db.CloseRedis()
	logger.Info("Successfully connected to Redis")

	if err := db.InitDB(); err != nil {
		logger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	userRepo := repository.NewMySQLUserRepository(db.DB)
	trackRepo := repository.NewMySQLTrackRepository(db.DB)
	history := cache.NewRedisHistory(db.RedisClient)
	spotifyClient := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)

	apiHandler := NewAPIHandler(userRepo, trackRepo, history, spotifyClient, cfg)

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(requestLogMiddleware)

	// Auth endpoints
	router.HandleFunc("/signup", apiHandler.SignupHandler).Methods(http.MethodPost)
	router.HandleFunc("/login", apiHandler.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/verifyAccessToken", apiHandler.VerifyTokenHandler).Methods(http.MethodPost)

	// Catalog and metadata endpoints
	router.HandleFunc("/addMusic", apiHandler.AddMusicHandler).Methods(http.MethodPost)
	router.HandleFunc("/song-audio-features", apiHandler.SongAudioFeaturesHandler).Methods(http.MethodGet)

	// Listening-history endpoints
	router.HandleFunc("/addMusicToListeningHistory", apiHandler.AddToListeningHistoryHandler).Methods(http.MethodPost)
	router.HandleFunc("/getLastListenedMusic", apiHandler.GetLastListenedMusicHandler).Methods(http.MethodGet)

	// Authenticated endpoints
	router.HandleFunc("/profile", apiHandler.AuthMiddleware(apiHandler.GetUserProfileHandler)).Methods(http.MethodGet)

	// Health check
	router.HandleFunc("/", apiHandler.HealthHandler).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}
