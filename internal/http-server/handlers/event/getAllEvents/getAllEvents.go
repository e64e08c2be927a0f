package getAllEvents

import (
	"log/slog"
	"net/http"

	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AllEventsGetter
type AllEventsGetter interface {
	GetAllEvents() ([]models.Event, error)
}

func New(log *slog.Logger, events AllEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		all, err := events.GetAllEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events listed", slog.Int("count", len(all)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   all,
		})
	}
}
