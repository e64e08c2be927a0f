package decideVendor

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

type DecisionRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=approve reject"`
}

type DecisionResponse struct {
	response.Response
	Participation *models.VendorParticipation `json:"participation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorDecider
type VendorDecider interface {
	DecideVendor(participationID, actorID string, isAdmin, approve bool) (*models.VendorParticipation, error)
}

func New(log *slog.Logger, vendor VendorDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendor.decideVendor.New"

		log = log.With(slog.String("op", op))

		principal, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no principal on request")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("principal is required"))
			return
		}

		if principal.Role != models.RoleOrganizer && !principal.IsAdmin() {
			log.Warn("actor cannot decide vendor applications", slog.String("role", string(principal.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only the event organizer or an admin can decide applications"))
			return
		}

		participationID := chi.URLParam(r, "id")
		if participationID == "" {
			log.Error("participation id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("participation id is required"))
			return
		}

		log = log.With(slog.String("participation_id", participationID))

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

		decided, err := vendor.DecideVendor(participationID, principal.ID, principal.IsAdmin(), req.Outcome == "approve")
		if err != nil {
			log.Error("failed to decide application", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrParticipationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("participation not found"))
			case errors.Is(err, storage.ErrNotOrganizer):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the event organizer or an admin can decide applications"))
			case errors.Is(err, storage.ErrIllegalState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("application is not pending"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to decide application"))
			}
			return
		}

		log.Info("vendor application decided", slog.String("status", string(decided.Status)))

		render.JSON(w, r, DecisionResponse{
			Response:      response.OK(),
			Participation: decided,
		})
	}
}
