package submitEvent

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

type SubmitResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSubmitter
type EventSubmitter interface {
	SubmitEvent(eventID, actorID string) (*models.Event, error)
}

func New(log *slog.Logger, event EventSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.submitEvent.New"

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

		submitted, err := event.SubmitEvent(eventID, principal.ID)
		if err != nil {
			log.Error("failed to submit event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrNotOrganizer):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the event organizer can submit it"))
			case errors.Is(err, storage.ErrIllegalState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event cannot be submitted in its current state"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit event"))
			}
			return
		}

		log.Info("event submitted for approval")

		render.JSON(w, r, SubmitResponse{
			Response: response.OK(),
			Event:    submitted,
		})
	}
}
