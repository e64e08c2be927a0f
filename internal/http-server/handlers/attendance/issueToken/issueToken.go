package issueToken

import (
	"errors"
	"log/slog"
	"net/http"

	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/lib/token"
	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// TokenRequest names the capacity the caller wants a check-in token for.
type TokenRequest struct {
	RoleContext string `json:"role_context" validate:"required,oneof=attendee vendor"`
}

type TokenResponse struct {
	response.Response
	Token string `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EligibilityChecker
type EligibilityChecker interface {
	GetEvent(eventID string) (*models.Event, error)
	IsEligible(eventID, principalID string, roleContext models.RoleContext) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenEncoder
type TokenEncoder interface {
	Encode(t token.Token) (string, error)
}

func New(log *slog.Logger, checker EligibilityChecker, codec TokenEncoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendance.issueToken.New"

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

		var req TokenRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		roleContext, err := models.ParseRoleContext(req.RoleContext)
		if err != nil {
			log.Error("invalid role context", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("role_context must be attendee or vendor"))
			return
		}

		if _, err = checker.GetEvent(eventID); err != nil {
			log.Error("failed to get event", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to issue token"))
			return
		}

		eligible, err := checker.IsEligible(eventID, principal.ID, roleContext)
		if err != nil {
			log.Error("failed to check eligibility", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to issue token"))
			return
		}
		if !eligible {
			log.Warn("token requested without eligibility")
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("no registration or approved participation for this event"))
			return
		}

		raw, err := codec.Encode(token.Token{
			EventID:     eventID,
			PrincipalID: principal.ID,
			RoleContext: roleContext,
		})
		if err != nil {
			log.Error("failed to encode token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to issue token"))
			return
		}

		log.Info("check-in token issued", slog.String("role_context", string(roleContext)))

		render.JSON(w, r, TokenResponse{
			Response: response.OK(),
			Token:    raw,
		})
	}
}
