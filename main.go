package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitnessCheckAPI/handlers"
	"fitnessCheckAPI/internal/db"
	"fitnessCheckAPI/middleware"
	"fitnessCheckAPI/services"

	_ "net/http/pprof"
)

var (
	dbPool             *pgxpool.Pool
	profileService     *services.ProfileService
	trackingService    *services.TrackingService
	challengeService   *services.ChallengeService
	achievementService *services.AchievementService
	friendService      *services.FriendService
	syncService        *services.FitnessSyncService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.RunMigrations(dbURL); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to database")

	profileService = services.NewProfileService(dbPool)
	trackingService = services.NewTrackingService(dbPool, profileService)
	challengeService = services.NewChallengeService(dbPool)
	achievementService = services.NewAchievementService(dbPool, trackingService)
	friendService = services.NewFriendService(dbPool)

	trackerClient := services.NewTrackerClient(os.Getenv("TRACKER_API_URL"), os.Getenv("TRACKER_API_TOKEN"))
	syncService = services.NewFitnessSyncService(dbPool, trackerClient)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}()

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	friendHandler := handlers.NewFriendHandler(friendService)
	syncHandler := handlers.NewSyncHandler(syncService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "fitnessCheck-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API V1 SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api/v1").Subrouter()

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE DEVICE TOKEN)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.DeviceAuthMiddleware)

	protected.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/profile/reset", profileHandler.ResetProfile).Methods("POST")
	protected.HandleFunc("/profile/stats", profileHandler.GetProfileStats).Methods("GET")

	protected.HandleFunc("/tracking", trackingHandler.UpsertTracking).Methods("POST")
	protected.HandleFunc("/tracking/today", trackingHandler.GetToday).Methods("GET")
	protected.HandleFunc("/tracking/today/status", trackingHandler.GetTodayStatus).Methods("GET")
	protected.HandleFunc("/tracking/calendar", trackingHandler.GetCalendar).Methods("GET")
	protected.HandleFunc("/tracking/summary", trackingHandler.GetSummary).Methods("GET")

	protected.HandleFunc("/challenges", challengeHandler.GetChallenges).Methods("GET")
	protected.HandleFunc("/challenges", challengeHandler.CreateChallenge).Methods("POST")
	protected.HandleFunc("/challenges/{id}/progress", challengeHandler.ApplyProgressDelta).Methods("POST")
	protected.HandleFunc("/challenges/{id}/active", challengeHandler.SetActive).Methods("PUT")
	protected.HandleFunc("/challenges/{id}", challengeHandler.DeleteChallenge).Methods("DELETE")

	protected.HandleFunc("/friends", friendHandler.GetFriends).Methods("GET")
	protected.HandleFunc("/leaderboard", friendHandler.GetLeaderboard).Methods("GET")

	protected.HandleFunc("/achievements", achievementHandler.GetAchievements).Methods("GET")
	protected.HandleFunc("/achievements/evaluate", achievementHandler.EvaluateAchievements).Methods("POST")

	protected.HandleFunc("/sync/fitness", syncHandler.SyncFitness).Methods("POST")

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
