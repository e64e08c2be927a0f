package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agroexpo/internal/lib/logger/handlers/slogdiscard"
	"agroexpo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		principalID    string
		principalRole  string
		expectedStatus int
		expectedRole   models.Role
	}{
		{
			name:           "Resolves principal",
			principalID:    "user-1",
			principalRole:  "attendee",
			expectedStatus: http.StatusOK,
			expectedRole:   models.RoleAttendee,
		},
		{
			name:           "Normalizes role spelling",
			principalID:    "admin-1",
			principalRole:  " ADMIN ",
			expectedStatus: http.StatusOK,
			expectedRole:   models.RoleAdmin,
		},
		{
			name:           "Missing principal id",
			principalID:    "",
			principalRole:  "attendee",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Unknown role",
			principalID:    "user-1",
			principalRole:  "superuser",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Guests rejected",
			principalID:    "user-1",
			principalRole:  "guest",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var seen *Principal

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, ok := FromContext(r.Context())
				require.True(t, ok)
				seen = &p
				w.WriteHeader(http.StatusOK)
			})

			req, err := http.NewRequest("POST", "/", nil)
			require.NoError(t, err)

			if tc.principalID != "" {
				req.Header.Set(HeaderPrincipalID, tc.principalID)
			}
			req.Header.Set(HeaderPrincipalRole, tc.principalRole)

			rr := httptest.NewRecorder()

			Require(logger)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, tc.principalID, seen.ID)
				assert.Equal(t, tc.expectedRole, seen.Role)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestFromContextWithoutPrincipal(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)

	_, ok := FromContext(req.Context())
	assert.False(t, ok)
}
