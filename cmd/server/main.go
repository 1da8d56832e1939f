package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnread/internal/config"
	"learnread/internal/curriculum"
	"learnread/internal/database"
	"learnread/internal/handlers"
	"learnread/internal/repository"
	"learnread/internal/security"
	"learnread/internal/service"
	"learnread/internal/speech"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	learnerRepo := repository.NewLearnerRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	// Initialize speech engine and pre-generate clips for the whole
	// curriculum in the background
	speaker := speech.NewTTS(cfg.AudioPath, cfg.SpeechLang)
	go prewarmAudio(speaker)

	// Initialize services
	progressService := service.NewProgressService(progressRepo)
	lessonService := service.NewLessonService(progressService, speaker)
	diagnosticService := service.NewDiagnosticService(speaker)

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.ParentEmail, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	// Security
	sessions := security.NewSessionManager(cfg.SessionSecret, cfg.SessionDuration)
	limiter := security.NewRateLimiter(30, 60, time.Minute)
	gate, err := security.NewParentGate(cfg.ParentPIN)
	if err != nil {
		log.Fatalf("Failed to initialize parent gate: %v", err)
	}
	if !gate.Enabled() {
		log.Println("Warning: PARENT_PIN not set, parent actions are unguarded")
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(sessions, learnerRepo, limiter)
	learnerHandler := handlers.NewLearnerHandler(learnerRepo, progressService, sessions)
	curriculumHandler := handlers.NewCurriculumHandler(progressService)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService, progressService)
	lessonHandler := handlers.NewLessonHandler(lessonService, progressService, speaker)
	progressHandler := handlers.NewProgressHandler(progressService, gate)
	reportHandler := handlers.NewReportHandler(reportService, progressService, gate)

	// Setup routes
	mux := http.NewServeMux()

	// Generated speech clips
	mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioPath))))

	// Learner profiles
	mux.HandleFunc("POST /api/learners", middleware.RateLimit(learnerHandler.Create))
	mux.HandleFunc("GET /api/learners", learnerHandler.List)
	mux.HandleFunc("POST /api/learners/{id}/select", middleware.RateLimit(learnerHandler.Select))
	mux.HandleFunc("GET /api/learners/current", middleware.RequireLearner(learnerHandler.Current))

	// Curriculum
	mux.HandleFunc("GET /api/map", middleware.RequireLearner(curriculumHandler.Map))
	mux.HandleFunc("GET /api/days/{day}", middleware.RequireLearner(curriculumHandler.Day))

	// Diagnostic (day 0)
	mux.HandleFunc("POST /api/diagnostic/start", middleware.RequireLearner(diagnosticHandler.Start))
	mux.HandleFunc("POST /api/diagnostic/{id}/begin", middleware.RequireLearner(diagnosticHandler.Begin))
	mux.HandleFunc("POST /api/diagnostic/{id}/answer", middleware.RequireLearner(diagnosticHandler.Answer))
	mux.HandleFunc("POST /api/diagnostic/{id}/complete", middleware.RequireLearner(diagnosticHandler.Complete))

	// Lessons
	mux.HandleFunc("POST /api/lessons/start", middleware.RequireLearner(lessonHandler.Start))
	mux.HandleFunc("GET /api/lessons/{id}", middleware.RequireLearner(lessonHandler.Get))
	mux.HandleFunc("POST /api/lessons/{id}/begin", middleware.RequireLearner(lessonHandler.Begin))
	mux.HandleFunc("POST /api/lessons/{id}/game-complete", middleware.RequireLearner(lessonHandler.GameComplete))
	mux.HandleFunc("POST /api/lessons/{id}/read-word", middleware.RequireLearner(lessonHandler.ReadWord))
	mux.HandleFunc("POST /api/lessons/{id}/reading-complete", middleware.RequireLearner(lessonHandler.ReadingComplete))
	mux.HandleFunc("POST /api/lessons/{id}/creative-complete", middleware.RequireLearner(lessonHandler.CreativeComplete))
	mux.HandleFunc("POST /api/lessons/{id}/skip-creative", middleware.RequireLearner(lessonHandler.SkipCreative))

	// Progress
	mux.HandleFunc("GET /api/progress", middleware.RequireLearner(progressHandler.Get))
	mux.HandleFunc("GET /api/progress/percent", middleware.RequireLearner(progressHandler.Percent))
	mux.HandleFunc("POST /api/progress/letters", middleware.RequireLearner(progressHandler.MarkLetter))
	mux.HandleFunc("POST /api/progress/syllables", middleware.RequireLearner(progressHandler.AddSyllable))
	mux.HandleFunc("POST /api/progress/sentences", middleware.RequireLearner(progressHandler.AddSentence))
	mux.HandleFunc("POST /api/progress/stage1/check", middleware.RequireLearner(progressHandler.CheckStage1))
	mux.HandleFunc("POST /api/progress/reset", middleware.RequireLearner(middleware.RateLimit(progressHandler.Reset)))

	// Parent report
	mux.HandleFunc("POST /api/report", middleware.RequireLearner(middleware.RateLimit(reportHandler.Send)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background cleanup of abandoned sessions
	go sweepSessions(lessonService, diagnosticService, cfg.LessonIdleLimit)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// sweepSessions periodically drops abandoned lesson and diagnostic
// sessions.
func sweepSessions(lessons *service.LessonService, diagnostics *service.DiagnosticService, maxIdle time.Duration) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if n := lessons.SweepAbandoned(maxIdle); n > 0 {
			log.Printf("Swept %d abandoned lesson sessions", n)
		}
		if n := diagnostics.SweepAbandoned(maxIdle); n > 0 {
			log.Printf("Swept %d abandoned diagnostic sessions", n)
		}
	}
}

// prewarmAudio generates speech clips for every piece of curriculum
// content so lessons never wait on the TTS endpoint.
func prewarmAudio(tts *speech.TTS) {
	seen := make(map[string]bool)
	var texts []string
	add := func(items ...string) {
		for _, item := range items {
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			texts = append(texts, item)
		}
	}

	for _, day := range curriculum.AllDays() {
		add(day.Title)
		add(day.Letters...)
		add(day.Syllables...)
		add(day.Words...)
		add(day.Sentences...)
	}
	add(curriculum.DiagnosticLetters...)

	if _, err := tts.BatchEnsureClips(context.Background(), texts); err != nil {
		log.Printf("Warning: some audio clips failed to generate: %v", err)
	} else {
		log.Printf("Audio prewarm complete (%d clips)", len(texts))
	}
}
