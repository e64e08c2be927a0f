package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartAt     time.Time `json:"start_at" validate:"required"`
	EndAt       time.Time `json:"end_at" validate:"required"`
	Capacity    *int      `json:"capacity"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(organizerID, title, description, location string, startAt, endAt time.Time, capacity *int) (*models.Event, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		principal, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no principal on request")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("principal is required"))
			return
		}

		if principal.Role != models.RoleOrganizer {
			log.Warn("non-organizer tried to create event", slog.String("role", string(principal.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only organizers can create events"))
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if req.EndAt.Before(req.StartAt) {
			log.Error("end_at before start_at")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("end_at must not be before start_at"))
			return
		}

		if req.Capacity != nil && *req.Capacity <= 0 {
			log.Error("non-positive capacity", slog.Int("capacity", *req.Capacity))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("capacity must be a positive integer"))
			return
		}

		created, err := event.CreateEvent(principal.ID, req.Title, req.Description, req.Location, req.StartAt, req.EndAt, req.Capacity)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.String("id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
