package applyVendor

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

type ApplyResponse struct {
	response.Response
	Participation *models.VendorParticipation `json:"participation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorApplier
type VendorApplier interface {
	ApplyVendor(eventID, vendorID string) (*models.VendorParticipation, error)
}

func New(log *slog.Logger, vendor VendorApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendor.applyVendor.New"

		log = log.With(slog.String("op", op))

		principal, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no principal on request")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("principal is required"))
			return
		}

		if principal.Role != models.RoleVendor {
			log.Warn("non-vendor tried to apply", slog.String("role", string(principal.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only vendors can apply to events"))
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

		participation, err := vendor.ApplyVendor(eventID, principal.ID)
		if err != nil {
			log.Error("failed to apply", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrIllegalState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is not approved"))
			case errors.Is(err, storage.ErrAlreadyApplied):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("vendor already applied to this event"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to apply to event"))
			}
			return
		}

		log.Info("vendor application filed", slog.String("participation_id", participation.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ApplyResponse{
			Response:      response.OK(),
			Participation: participation,
		})
	}
}
