package cancelRegistration

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroexpo/internal/http-server/handlers/registration/cancelRegistration/mocks"
	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/logger/handlers/slogdiscard"
	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	attendee := identity.Principal{ID: "user-1", Role: models.RoleAttendee}
	admin := identity.Principal{ID: "admin-1", Role: models.RoleAdmin}

	testCases := []struct {
		name           string
		principal      *identity.Principal
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.RegistrationCanceller)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Cancel own registration with empty body",
			principal:   &attendee,
			eventID:     "ev-1",
			requestBody: "",
			mockSetup: func(m *mocks.RegistrationCanceller) {
				m.On("CancelRegistration", "ev-1", "user-1", "user-1", false).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"OK"`)
			},
		},
		{
			name:        "Admin cancels for another user",
			principal:   &admin,
			eventID:     "ev-1",
			requestBody: `{"user_id": "user-2"}`,
			mockSetup: func(m *mocks.RegistrationCanceller) {
				m.On("CancelRegistration", "ev-1", "user-2", "admin-1", true).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Attendee cannot cancel for another user",
			principal:   &attendee,
			eventID:     "ev-1",
			requestBody: `{"user_id": "user-2"}`,
			mockSetup: func(m *mocks.RegistrationCanceller) {
				m.On("CancelRegistration", "ev-1", "user-2", "user-1", false).
					Return(storage.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "another user")
			},
		},
		{
			name:        "Registration not found",
			principal:   &attendee,
			eventID:     "ev-1",
			requestBody: "",
			mockSetup: func(m *mocks.RegistrationCanceller) {
				m.On("CancelRegistration", "ev-1", "user-1", "user-1", false).
					Return(storage.ErrRegistrationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "No principal",
			principal:      nil,
			eventID:        "ev-1",
			requestBody:    "",
			mockSetup:      func(m *mocks.RegistrationCanceller) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "Storage failure",
			principal:   &attendee,
			eventID:     "ev-1",
			requestBody: "",
			mockSetup: func(m *mocks.RegistrationCanceller) {
				m.On("CancelRegistration", "ev-1", "user-1", "user-1", false).
					Return(errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewRegistrationCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			req, err := http.NewRequest("DELETE", "/events/"+tc.eventID+"/register", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.principal != nil {
				req = req.WithContext(identity.WithPrincipal(req.Context(), *tc.principal))
			}

			router := chi.NewRouter()
			router.Delete("/events/{id}/register", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
