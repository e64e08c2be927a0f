package cancelRegistration

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// CancelRequest optionally names the user whose registration is cancelled.
// Only admins may cancel for someone else; an empty body cancels the caller's
// own registration.
type CancelRequest struct {
	UserID string `json:"user_id"`
}

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationCanceller
type RegistrationCanceller interface {
	CancelRegistration(eventID, userID, actorID string, isAdmin bool) error
}

func New(log *slog.Logger, registration RegistrationCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.cancelRegistration.New"

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

		var req CancelRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		userID := req.UserID
		if userID == "" {
			userID = principal.ID
		}

		err = registration.CancelRegistration(eventID, userID, principal.ID, principal.IsAdmin())
		if err != nil {
			log.Error("failed to cancel registration", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrRegistrationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("cannot cancel another user's registration"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel registration"))
			}
			return
		}

		log.Info("registration cancelled", slog.String("user_id", userID))

		render.JSON(w, r, CancelResponse{
			Response: response.OK(),
		})
	}
}
