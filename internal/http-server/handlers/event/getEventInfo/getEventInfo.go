package getEventInfo

import (
	"errors"
	"log/slog"
	"net/http"

	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event     *models.Event     `json:"event"`
	Occupancy *models.Occupancy `json:"occupancy"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(eventID string) (*models.Event, error)
	GetEventOccupancy(eventID string) (*models.Occupancy, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, err := info.GetEvent(eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		occupancy, err := info.GetEventOccupancy(eventID)
		if err != nil {
			log.Error("failed to get occupancy", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		log.Info("event info successfully received")

		responseOK(w, r, event, occupancy)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, occupancy *models.Occupancy) {
	render.JSON(w, r, EventInfoResponse{
		Response:  response.OK(),
		Event:     event,
		Occupancy: occupancy,
	})
}
