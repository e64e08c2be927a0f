package issueToken

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroexpo/internal/http-server/handlers/attendance/issueToken/mocks"
	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/logger/handlers/slogdiscard"
	"agroexpo/internal/lib/token"
	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	attendee := identity.Principal{ID: "user-1", Role: models.RoleAttendee}
	vendor := identity.Principal{ID: "vendor-1", Role: models.RoleVendor}

	approvedEvent := &models.Event{ID: "ev-1", Status: models.StatusApproved}

	testCases := []struct {
		name           string
		principal      *identity.Principal
		eventID        string
		requestBody    string
		checkerSetup   func(m *mocks.EligibilityChecker)
		encoderSetup   func(m *mocks.TokenEncoder)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Registered attendee gets a token",
			principal:   &attendee,
			eventID:     "ev-1",
			requestBody: `{"role_context": "attendee"}`,
			checkerSetup: func(m *mocks.EligibilityChecker) {
				m.On("GetEvent", "ev-1").Return(approvedEvent, nil)
				m.On("IsEligible", "ev-1", "user-1", models.ContextAttendee).
					Return(true, nil)
			},
			encoderSetup: func(m *mocks.TokenEncoder) {
				m.On("Encode", token.Token{
					EventID:     "ev-1",
					PrincipalID: "user-1",
					RoleContext: models.ContextAttendee,
				}).Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "signed-token")
			},
		},
		{
			name:        "Approved vendor gets a token",
			principal:   &vendor,
			eventID:     "ev-1",
			requestBody: `{"role_context": "vendor"}`,
			checkerSetup: func(m *mocks.EligibilityChecker) {
				m.On("GetEvent", "ev-1").Return(approvedEvent, nil)
				m.On("IsEligible", "ev-1", "vendor-1", models.ContextVendor).
					Return(true, nil)
			},
			encoderSetup: func(m *mocks.TokenEncoder) {
				m.On("Encode", token.Token{
					EventID:     "ev-1",
					PrincipalID: "vendor-1",
					RoleContext: models.ContextVendor,
				}).Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Not eligible",
			principal:   &attendee,
			eventID:     "ev-1",
			requestBody: `{"role_context": "attendee"}`,
			checkerSetup: func(m *mocks.EligibilityChecker) {
				m.On("GetEvent", "ev-1").Return(approvedEvent, nil)
				m.On("IsEligible", "ev-1", "user-1", models.ContextAttendee).
					Return(false, nil)
			},
			encoderSetup:   func(m *mocks.TokenEncoder) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "no registration or approved participation")
			},
		},
		{
			name:        "Event not found",
			principal:   &attendee,
			eventID:     "missing",
			requestBody: `{"role_context": "attendee"}`,
			checkerSetup: func(m *mocks.EligibilityChecker) {
				m.On("GetEvent", "missing").Return(nil, storage.ErrEventNotFound)
			},
			encoderSetup:   func(m *mocks.TokenEncoder) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Unknown role context",
			principal:      &attendee,
			eventID:        "ev-1",
			requestBody:    `{"role_context": "organizer"}`,
			checkerSetup:   func(m *mocks.EligibilityChecker) {},
			encoderSetup:   func(m *mocks.TokenEncoder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing role context",
			principal:      &attendee,
			eventID:        "ev-1",
			requestBody:    `{}`,
			checkerSetup:   func(m *mocks.EligibilityChecker) {},
			encoderSetup:   func(m *mocks.TokenEncoder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "required field")
			},
		},
		{
			name:           "No principal",
			principal:      nil,
			eventID:        "ev-1",
			requestBody:    `{"role_context": "attendee"}`,
			checkerSetup:   func(m *mocks.EligibilityChecker) {},
			encoderSetup:   func(m *mocks.TokenEncoder) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "Encode failure",
			principal:   &attendee,
			eventID:     "ev-1",
			requestBody: `{"role_context": "attendee"}`,
			checkerSetup: func(m *mocks.EligibilityChecker) {
				m.On("GetEvent", "ev-1").Return(approvedEvent, nil)
				m.On("IsEligible", "ev-1", "user-1", models.ContextAttendee).
					Return(true, nil)
			},
			encoderSetup: func(m *mocks.TokenEncoder) {
				m.On("Encode", token.Token{
					EventID:     "ev-1",
					PrincipalID: "user-1",
					RoleContext: models.ContextAttendee,
				}).Return("", errors.New("signing failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockChecker := mocks.NewEligibilityChecker(t)
			tc.checkerSetup(mockChecker)

			mockEncoder := mocks.NewTokenEncoder(t)
			tc.encoderSetup(mockEncoder)

			handler := New(logger, mockChecker, mockEncoder)

			req, err := http.NewRequest("POST", "/events/"+tc.eventID+"/token", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.principal != nil {
				req = req.WithContext(identity.WithPrincipal(req.Context(), *tc.principal))
			}

			router := chi.NewRouter()
			router.Post("/events/{id}/token", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
