package checkIn

import (
	"errors"
	"log/slog"
	"net/http"

	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/lib/token"
	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CheckInRequest struct {
	Token string `json:"token" validate:"required"`
}

type CheckInResponse struct {
	response.Response
	Attendance       *models.Attendance `json:"attendance"`
	AlreadyCheckedIn bool               `json:"already_checked_in"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenDecoder
type TokenDecoder interface {
	Decode(raw string) (*token.Token, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceRecorder
type AttendanceRecorder interface {
	CheckIn(eventID, principalID string, roleContext models.RoleContext) (*models.Attendance, bool, error)
}

func New(log *slog.Logger, codec TokenDecoder, recorder AttendanceRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendance.checkIn.New"

		log = log.With(slog.String("op", op))

		var req CheckInRequest

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

		decoded, err := codec.Decode(req.Token)
		if err != nil {
			log.Warn("rejected check-in token", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("malformed or unverifiable token"))
			return
		}

		log = log.With(
			slog.String("event_id", decoded.EventID),
			slog.String("principal_id", decoded.PrincipalID),
			slog.String("role_context", string(decoded.RoleContext)),
		)

		attendance, alreadyCheckedIn, err := recorder.CheckIn(decoded.EventID, decoded.PrincipalID, decoded.RoleContext)
		if err != nil {
			log.Error("failed to check in", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrNotEligible):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("no registration or approved participation for this event"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to check in"))
			}
			return
		}

		if alreadyCheckedIn {
			log.Info("repeated scan, attendance already recorded")
		} else {
			log.Info("attendance recorded", slog.String("attendance_id", attendance.ID))
		}

		render.JSON(w, r, CheckInResponse{
			Response:         response.OK(),
			Attendance:       attendance,
			AlreadyCheckedIn: alreadyCheckedIn,
		})
	}
}
