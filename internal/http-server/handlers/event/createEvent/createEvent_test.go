package createEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroexpo/internal/http-server/handlers/event/createEvent/mocks"
	"agroexpo/internal/http-server/middleware/identity"
	"agroexpo/internal/lib/logger/handlers/slogdiscard"
	"agroexpo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	organizer := identity.Principal{ID: "org-1", Role: models.RoleOrganizer}

	validBody := `{
		"title": "Spring Seed Fair",
		"location": "Hall 3",
		"start_at": "2026-09-01T09:00:00Z",
		"end_at": "2026-09-01T17:00:00Z",
		"capacity": 200
	}`

	testCases := []struct {
		name           string
		principal      *identity.Principal
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			principal:   &organizer,
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", "org-1", "Spring Seed Fair", "", "Hall 3", mock.Anything, mock.Anything, mock.Anything).
					Return(&models.Event{
						ID:          "ev-1",
						OrganizerID: "org-1",
						Title:       "Spring Seed Fair",
						Status:      models.StatusDraft,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"draft"`)
			},
		},
		{
			name:           "No principal",
			principal:      nil,
			requestBody:    validBody,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Attendee cannot create",
			principal:      &identity.Principal{ID: "user-1", Role: models.RoleAttendee},
			requestBody:    validBody,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "only organizers")
			},
		},
		{
			name:           "Invalid JSON",
			principal:      &organizer,
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing title",
			principal:      &organizer,
			requestBody:    `{"start_at": "2026-09-01T09:00:00Z", "end_at": "2026-09-01T17:00:00Z"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:      "End before start",
			principal: &organizer,
			requestBody: `{
				"title": "Backwards",
				"start_at": "2026-09-01T17:00:00Z",
				"end_at": "2026-09-01T09:00:00Z"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "end_at must not be before start_at")
			},
		},
		{
			name:      "Zero capacity",
			principal: &organizer,
			requestBody: `{
				"title": "Empty",
				"start_at": "2026-09-01T09:00:00Z",
				"end_at": "2026-09-01T17:00:00Z",
				"capacity": 0
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "capacity must be a positive integer")
			},
		},
		{
			name:        "Storage failure",
			principal:   &organizer,
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", "org-1", "Spring Seed Fair", "", "Hall 3", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.principal != nil {
				req = req.WithContext(identity.WithPrincipal(req.Context(), *tc.principal))
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
