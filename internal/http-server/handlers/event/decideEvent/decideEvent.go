package decideEvent

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
	"github.com/go-playground/validator/v10"
)

const (
	OutcomeApprove = "approve"
	OutcomeReject  = "reject"
)

type DecisionRequest struct {
	Outcome  string `json:"outcome" validate:"required,oneof=approve reject"`
	Feedback string `json:"feedback"`
}

type DecisionResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDecider
type EventDecider interface {
	DecideEvent(eventID string, approve bool, feedback string) (*models.Event, error)
}

func New(log *slog.Logger, event EventDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.decideEvent.New"

		log = log.With(slog.String("op", op))

		principal, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no principal on request")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("principal is required"))
			return
		}

		if !principal.IsAdmin() {
			log.Warn("non-admin tried to decide event", slog.String("role", string(principal.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only admins can approve or reject events"))
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

		var req DecisionRequest

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

		if req.Outcome == OutcomeReject && req.Feedback == "" {
			log.Error("rejection without feedback")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("feedback is required when rejecting an event"))
			return
		}

		// Feedback accompanies rejections only.
		feedback := req.Feedback
		if req.Outcome == OutcomeApprove {
			feedback = ""
		}

		decided, err := event.DecideEvent(eventID, req.Outcome == OutcomeApprove, feedback)
		if err != nil {
			log.Error("failed to decide event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrIllegalState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is not pending approval"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to decide event"))
			}
			return
		}

		log.Info("event decided", slog.String("status", string(decided.Status)))

		render.JSON(w, r, DecisionResponse{
			Response: response.OK(),
			Event:    decided,
		})
	}
}
