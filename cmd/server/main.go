package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amavidya/internal/cache"
	"amavidya/internal/config"
	"amavidya/internal/content"
	"amavidya/internal/database"
	"amavidya/internal/handlers"
	"amavidya/internal/repository"
	"amavidya/internal/security"
	"amavidya/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	snapshot, err := cache.Open(cfg.SnapshotPath)
	if err != nil {
		log.Fatalf("Failed to open snapshot cache: %v", err)
	}

	catalog := content.NewCatalog()
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)
	authLimiter := security.NewRateLimiter(10, time.Minute)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	eventRepo := repository.NewEventRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	// Services
	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	authService := service.NewAuthService(db, userRepo, tokens, emailService, snapshot)
	progressService := service.NewProgressService(progressRepo, eventRepo, snapshot, catalog)
	quizService := service.NewQuizService(quizRepo, catalog, progressService)
	teacherService := service.NewTeacherService(userRepo, progressRepo, eventRepo, snapshot, emailService)

	// Handlers
	mw := handlers.NewMiddleware(authService, tokens, authLimiter)
	authHandler := handlers.NewAuthHandler(authService)
	contentHandler := handlers.NewContentHandler(catalog)
	studentHandler := handlers.NewStudentHandler(progressService)
	quizHandler := handlers.NewQuizHandler(quizService)
	teacherHandler := handlers.NewTeacherHandler(teacherService)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", mw.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", mw.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/auth/me", mw.RequireAuth(authHandler.Me))
	mux.HandleFunc("POST /api/auth/avatar", mw.RequireAuth(authHandler.UpdateAvatar))

	// Catalog
	mux.HandleFunc("GET /api/videos", mw.RequireAuth(contentHandler.ListVideos))
	mux.HandleFunc("GET /api/videos/{id}", mw.RequireAuth(contentHandler.GetVideo))
	mux.HandleFunc("GET /api/games", mw.RequireAuth(contentHandler.ListGames))
	mux.HandleFunc("GET /api/games/{id}", mw.RequireAuth(contentHandler.GetGame))

	// Student dashboard
	mux.HandleFunc("GET /api/student/progress", mw.RequireStudent(studentHandler.GetProgress))
	mux.HandleFunc("GET /api/student/achievements", mw.RequireStudent(studentHandler.GetAchievements))
	mux.HandleFunc("POST /api/student/videos/{id}/complete", mw.RequireStudent(studentHandler.CompleteVideo))

	// Quiz sessions
	mux.HandleFunc("POST /api/student/games/{id}/start", mw.RequireStudent(quizHandler.Start))
	mux.HandleFunc("GET /api/student/quiz", mw.RequireStudent(quizHandler.Current))
	mux.HandleFunc("POST /api/student/quiz/answer", mw.RequireStudent(quizHandler.Answer))
	mux.HandleFunc("POST /api/student/quiz/advance", mw.RequireStudent(quizHandler.Advance))
	mux.HandleFunc("POST /api/student/quiz/restart", mw.RequireStudent(quizHandler.Restart))
	mux.HandleFunc("POST /api/student/quiz/exit", mw.RequireStudent(quizHandler.Exit))

	// Teacher dashboard
	mux.HandleFunc("GET /api/teacher/overview", mw.RequireTeacher(teacherHandler.Overview))
	mux.HandleFunc("GET /api/teacher/students", mw.RequireTeacher(teacherHandler.Students))
	mux.HandleFunc("GET /api/teacher/students/{id}", mw.RequireTeacher(teacherHandler.StudentDetail))
	mux.HandleFunc("POST /api/teacher/report", mw.RequireTeacher(teacherHandler.SendReport))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handlers.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Retry progress saves that failed while the database was down
	stopSync := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.SyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				progressService.FlushPending()
			case <-stopSync:
				return
			}
		}
	}()

	go func() {
		log.Printf("Server listening on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	close(stopSync)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	// One last chance for queued progress to reach the database
	progressService.FlushPending()
	log.Println("Server stopped")
}
