package get_available_slots

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StationBooking/pkg/logger"
)

type fakeService struct {
	date domain.Date
}

func (f *fakeService) Availability(ctx context.Context, date domain.Date) (*models.AvailabilityResponse, error) {
	f.date = date
	return models.FromDomainGrid(date, domain.Grid{}), nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{name: "Success", query: "?date=2025-03-08", expectedStatus: http.StatusOK},
		{name: "Missing date", query: "", expectedStatus: http.StatusBadRequest},
		{name: "Bad date", query: "?date=2025-13-40", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			h := NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

			rr := httptest.NewRecorder()
			h.Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/slots"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, domain.NewDate(2025, time.March, 8), svc.date)
				assert.Contains(t, rr.Body.String(), `"name":"PC-20"`)
			}
		})
	}
}
