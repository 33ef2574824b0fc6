package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/alertlink/internal/config"
	"github.com/alertlink/internal/handler"
	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/repository"
	"github.com/alertlink/internal/seed"
	"github.com/alertlink/internal/service"
	"github.com/alertlink/internal/startup"
	"github.com/alertlink/internal/storage"
	"github.com/alertlink/internal/storage/memory"
)

func main() {
	logger.SetPrefix("api")
	dev := flag.Bool("dev", false, "use the in-memory session store (no Redis required)")
	flag.Parse()

	logger.Info("starting API service")
	cfg := config.Load()

	var store storage.SessionStore
	if *dev {
		logger.Info("dev mode: in-memory session store")
		store = memory.New()
	} else {
		store = startup.ConnectRedisWithRetry(cfg.Redis.URL, 60*time.Second)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf("session store close: %v", err)
		}
	}()

	fixtures := seed.Data(time.Now().UTC())
	userRepo := repository.NewUserRepository(fixtures.Users)
	chatRepo := repository.NewChatRepository(fixtures.Chats)
	msgRepo := repository.NewMessageRepository(fixtures.Messages)
	alertRepo := repository.NewAlertRepository(fixtures.Alerts)

	sched := service.NewStatusScheduler(msgRepo, cfg.DeliveredDelay, cfg.ReadDelay)
	authSvc := service.NewAuthService(store, userRepo, cfg.LoginOTP)
	chatSvc := service.NewChatService(chatRepo, msgRepo, userRepo, sched)
	msgSvc := service.NewMessageService(msgRepo, chatRepo, sched)
	alertSvc := service.NewAlertService(alertRepo)
	userSvc := service.NewUserService(userRepo)
	voiceSvc := service.NewVoiceService(chatRepo, msgSvc, cfg.VoiceMaxBytes, cfg.VoiceRecordingTTL)

	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	var janitorWg sync.WaitGroup
	janitorWg.Add(1)
	go func() {
		defer janitorWg.Done()
		voiceSvc.RunJanitor(janitorCtx)
	}()

	authH := handler.NewAuthHandler(authSvc)
	chatH := handler.NewChatHandler(chatSvc, authSvc)
	msgH := handler.NewMessageHandler(msgSvc, authSvc)
	alertH := handler.NewAlertHandler(alertSvc, authSvc)
	userH := handler.NewUserHandler(userSvc, authSvc)
	voiceH := handler.NewVoiceHandler(voiceSvc, authSvc)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RecoverJSON)
	r.Use(chimw.Compress(5))
	r.Use(middleware.RequestLog)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.NotFound(handler.NotFound)

	r.Route("/{locale}", func(r chi.Router) {
		r.Use(middleware.Locale)
		r.Use(middleware.RateLimitAPI)
		r.NotFound(handler.NotFound)

		r.Post("/api/auth/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(store))

			r.Post("/api/auth/logout", authH.Logout)
			r.Get("/api/me", authH.Me)
			r.Put("/api/language", authH.SetLanguage)

			r.Get("/api/users", userH.List)
			r.Get("/api/chats", chatH.List)
			r.Post("/api/chats/direct", chatH.CreateDirect)
			r.Get("/api/chats/{id}", chatH.Get)
			r.Delete("/api/chats/{id}", chatH.Delete)
			r.Get("/api/chats/{id}/messages", msgH.List)
			r.Post("/api/chats/{id}/messages", msgH.Send)

			r.Post("/api/chats/{id}/voice", voiceH.Start)
			r.Post("/api/voice/{recordingId}/chunks", voiceH.AppendChunk)
			r.Post("/api/voice/{recordingId}/stop", voiceH.Stop)
			r.Delete("/api/voice/{recordingId}", voiceH.Abort)

			r.Get("/api/alerts", alertH.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/api/alerts", alertH.Send)
				r.Post("/api/users", userH.Add)
				r.Delete("/api/users/{id}", userH.Delete)
			})
		})
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Infof("API listening on %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("listen: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}

	sched.Stop()
	janitorCancel()
	janitorWg.Wait()
	logger.Info("stopped")
}
