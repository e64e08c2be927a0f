package createRegistration

import (
	"errors"
	"log/slog"
	"net/http"

	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RegistrationResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	RegisterUser(eventID, userID string) (*models.Registration, error)
}

func New(log *slog.Logger, registrar UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.createRegistration.New"

		log = log.With(slog.String("op", op))

		principal, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no principal on request")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("principal is required"))
			return
		}

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		registration, err := registrar.RegisterUser(eventID, principal.ID)
		if err != nil {
			log.Error("failed to register", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrIllegalState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is not open for registration"))
			case errors.Is(err, storage.ErrEventStarted):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event has already started"))
			case errors.Is(err, storage.ErrAlreadyRegistered):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already registered for this event"))
			case errors.Is(err, storage.ErrCapacityExceeded):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is full"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register for event"))
			}
			return
		}

		log.Info("user registered", slog.String("user_id", principal.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegistrationResponse{
			Response:     response.OK(),
			Registration: registration,
		})
	}
}
