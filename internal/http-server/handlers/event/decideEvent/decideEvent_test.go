package decideEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroexpo/internal/http-server/handlers/event/decideEvent/mocks"
	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/logger/handlers/slogdiscard"
	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	admin := identity.Principal{ID: "admin-1", Role: models.RoleAdmin}

	testCases := []struct {
		name           string
		principal      *identity.Principal
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventDecider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Approve success",
			principal:   &admin,
			eventID:     "ev-1",
			requestBody: `{"outcome": "approve"}`,
			mockSetup: func(m *mocks.EventDecider) {
				m.On("DecideEvent", "ev-1", true, "").
					Return(&models.Event{ID: "ev-1", Status: models.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"approved"`)
			},
		},
		{
			name:        "Reject with feedback",
			principal:   &admin,
			eventID:     "ev-1",
			requestBody: `{"outcome": "reject", "feedback": "incomplete venue info"}`,
			mockSetup: func(m *mocks.EventDecider) {
				m.On("DecideEvent", "ev-1", false, "incomplete venue info").
					Return(&models.Event{
						ID:            "ev-1",
						Status:        models.StatusRejected,
						AdminFeedback: "incomplete venue info",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"rejected"`)
				assert.Contains(t, body, "incomplete venue info")
			},
		},
		{
			name:        "Approve drops stray feedback",
			principal:   &admin,
			eventID:     "ev-1",
			requestBody: `{"outcome": "approve", "feedback": "looks good"}`,
			mockSetup: func(m *mocks.EventDecider) {
				m.On("DecideEvent", "ev-1", true, "").
					Return(&models.Event{ID: "ev-1", Status: models.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"approved"`)
				assert.NotContains(t, body, "looks good")
			},
		},
		{
			name:           "Reject without feedback",
			principal:      &admin,
			eventID:        "ev-1",
			requestBody:    `{"outcome": "reject"}`,
			mockSetup:      func(m *mocks.EventDecider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "feedback is required")
			},
		},
		{
			name:           "Unknown outcome",
			principal:      &admin,
			eventID:        "ev-1",
			requestBody:    `{"outcome": "maybe"}`,
			mockSetup:      func(m *mocks.EventDecider) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Non-admin forbidden",
			principal:      &identity.Principal{ID: "org-1", Role: models.RoleOrganizer},
			eventID:        "ev-1",
			requestBody:    `{"outcome": "approve"}`,
			mockSetup:      func(m *mocks.EventDecider) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "Not pending approval",
			principal:   &admin,
			eventID:     "ev-1",
			requestBody: `{"outcome": "approve"}`,
			mockSetup: func(m *mocks.EventDecider) {
				m.On("DecideEvent", "ev-1", true, "").
					Return(nil, storage.ErrIllegalState)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "not pending approval")
			},
		},
		{
			name:        "Event not found",
			principal:   &admin,
			eventID:     "missing",
			requestBody: `{"outcome": "approve"}`,
			mockSetup: func(m *mocks.EventDecider) {
				m.On("DecideEvent", "missing", true, "").
					Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDecider := mocks.NewEventDecider(t)
			tc.mockSetup(mockDecider)

			handler := New(logger, mockDecider)

			req, err := http.NewRequest("POST", "/events/"+tc.eventID+"/decision", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.principal != nil {
				req = req.WithContext(identity.WithPrincipal(req.Context(), *tc.principal))
			}

			router := chi.NewRouter()
			router.Post("/events/{id}/decision", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
