package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"agroexpo/internal/config"
	"agroexpo/internal/http-server/handlers/attendance/checkIn"
	"agroexpo/internal/http-server/handlers/attendance/issueToken"
	"agroexpo/internal/http-server/handlers/event/createEvent"
	"agroexpo/internal/http-server/handlers/event/decideEvent"
	"agroexpo/internal/http-server/handlers/event/getAllEvents"
	"agroexpo/internal/http-server/handlers/event/getEventInfo"
	"agroexpo/internal/http-server/handlers/event/submitEvent"
	"agroexpo/internal/http-server/handlers/registration/cancelRegistration"
	"agroexpo/internal/http-server/handlers/registration/createRegistration"
	"agroexpo/internal/http-server/handlers/vendors/applyVendor"
	"agroexpo/internal/http-server/handlers/vendors/decideVendor"
	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/http-server/middleware/mwlogger"
	"agroexpo/internal/lib/logger/handlers/slogpretty"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/lib/token"
	"agroexpo/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting agroexpo", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	codec := token.NewCodec(cfg.Token.Secret)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{id}", getEventInfo.New(log, storage))

	// Check-in stations submit scanned tokens; the token itself carries the
	// principal, so no identity headers are needed here.
	router.Post("/checkin", checkIn.New(log, codec, storage))

	router.Group(func(r chi.Router) {
		r.Use(identity.Require(log))

		r.Post("/events", createEvent.New(log, storage))
		r.Post("/events/{id}/submit", submitEvent.New(log, storage))
		r.Post("/events/{id}/decision", decideEvent.New(log, storage))
		r.Post("/events/{id}/vendors", applyVendor.New(log, storage))
		r.Post("/vendors/{id}/decision", decideVendor.New(log, storage))
		r.Post("/events/{id}/register", createRegistration.New(log, storage))
		r.Delete("/events/{id}/register", cancelRegistration.New(log, storage))
		r.Post("/events/{id}/token", issueToken.New(log, storage, codec))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err = srv.Close(); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
