package login

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/integrations/authservice"
	"github.com/m04kA/SMC-StationBooking/pkg/logger"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	log := logger.NewWithWriter(io.Discard, logger.LevelDebug)
	client, err := authservice.NewClient([]authservice.Account{
		{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{Username: "john", Password: "john123", Role: domain.RoleCustomer},
	}, log)
	require.NoError(t, err)
	return NewHandler(client, log)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedScreen string
	}{
		{name: "Admin", body: `{"username":"admin","password":"admin123"}`, expectedStatus: http.StatusOK, expectedScreen: screenAdmin},
		{name: "Customer", body: `{"username":"john","password":"john123"}`, expectedStatus: http.StatusOK, expectedScreen: screenCustomer},
		{name: "Wrong password", body: `{"username":"john","password":"nope"}`, expectedStatus: http.StatusUnauthorized},
		{name: "Missing password", body: `{"username":"john"}`, expectedStatus: http.StatusBadRequest},
		{name: "Invalid JSON", body: `{`, expectedStatus: http.StatusBadRequest},
	}

	h := newHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Handle(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedScreen == "" {
				return
			}

			var resp LoginResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedScreen, resp.Screen)
		})
	}
}
