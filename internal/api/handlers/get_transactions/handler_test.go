package get_transactions

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StationBooking/pkg/logger"
)

type fakeService struct {
	called bool
	date   *domain.Date
}

func (f *fakeService) GetTransactions(ctx context.Context, date *domain.Date) (*models.TransactionListResponse, error) {
	f.called = true
	f.date = date
	return models.FromDomainTransactionList(nil), nil
}

func TestHandler_Handle(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, logger.LevelDebug)

	t.Run("All", func(t *testing.T) {
		svc := &fakeService{}
		rr := httptest.NewRecorder()
		NewHandler(svc, log).Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, svc.called)
		assert.Nil(t, svc.date)
		assert.JSONEq(t, `{"transactions":[],"total":"0.00"}`, rr.Body.String())
	})

	t.Run("By date", func(t *testing.T) {
		svc := &fakeService{}
		rr := httptest.NewRecorder()
		NewHandler(svc, log).Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/transactions?date=2025-03-07", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, svc.date)
		assert.Equal(t, domain.NewDate(2025, time.March, 7), *svc.date)
	})

	t.Run("Bad date", func(t *testing.T) {
		svc := &fakeService{}
		rr := httptest.NewRecorder()
		NewHandler(svc, log).Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/transactions?date=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, svc.called)
	})
}
