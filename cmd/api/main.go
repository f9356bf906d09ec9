package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/drivenpass/drivenpass-go/internal/config"
	"github.com/drivenpass/drivenpass-go/internal/crypto"
	"github.com/drivenpass/drivenpass-go/internal/handler"
	"github.com/drivenpass/drivenpass-go/internal/middleware"
	"github.com/drivenpass/drivenpass-go/internal/repository"
	"github.com/drivenpass/drivenpass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	cipher, err := crypto.NewCipher(cfg.CipherSecret)
	if err != nil {
		slog.Error("cipher setup failed", "error", err)
		os.Exit(1)
	}
	tokens := crypto.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	cardRepo := repository.NewCardRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	authService := service.NewAuthService(userRepo, tokens)
	credentialService := service.NewCredentialService(credentialRepo, cipher)
	cardService := service.NewCardService(cardRepo, cipher)
	noteService := service.NewNoteService(noteRepo)
	accountService := service.NewAccountService(userRepo, credentialRepo, noteRepo, cardRepo, authService)
	generatorService := service.NewGeneratorService()

	authHandler := handler.NewAuthHandler(authService)
	credentialHandler := handler.NewCredentialHandler(credentialService)
	cardHandler := handler.NewCardHandler(cardService)
	noteHandler := handler.NewNoteHandler(noteService)
	accountHandler := handler.NewAccountHandler(accountService)
	generatorHandler := handler.NewGeneratorHandler(generatorService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("I'm okay!"))
	})

	r.Post("/users/sign-up", authHandler.HandleSignUp)
	r.Post("/users/sign-in", authHandler.HandleSignIn)
	r.Post("/passwords/generate", generatorHandler.HandleGenerate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, userRepo))

		r.Get("/users/me", authHandler.HandleMe)

		r.Post("/credentials", credentialHandler.HandleCreate)
		r.Get("/credentials", credentialHandler.HandleList)
		r.Get("/credentials/{id}", credentialHandler.HandleGet)
		r.Delete("/credentials/{id}", credentialHandler.HandleDelete)

		r.Post("/cards", cardHandler.HandleCreate)
		r.Get("/cards", cardHandler.HandleList)
		r.Get("/cards/{id}", cardHandler.HandleGet)
		r.Delete("/cards/{id}", cardHandler.HandleDelete)

		r.Post("/notes", noteHandler.HandleCreate)
		r.Get("/notes", noteHandler.HandleList)
		r.Get("/notes/{id}", noteHandler.HandleGet)
		r.Delete("/notes/{id}", noteHandler.HandleDelete)

		r.Delete("/erase", accountHandler.HandleErase)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
