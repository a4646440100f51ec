package bookings

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-StationBooking/internal/infra/storage/slots"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StationBooking/pkg/logger"
	"github.com/m04kA/SMC-StationBooking/pkg/txmanager"
)

// now 9:00 утра, все слоты сегодняшнего дня еще впереди
var (
	now      = time.Date(2025, time.March, 7, 9, 0, 0, 0, time.Local)
	today    = domain.DateOf(now)
	tomorrow = today.AddDays(1)
)

type recordingMetrics struct {
	mu            sync.Mutex
	bookings      int
	hours         int
	rejections    []string
	cancellations int
}

func (m *recordingMetrics) ObserveBooking(hours int, amount float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings++
	m.hours += hours
}

func (m *recordingMetrics) ObserveRejection(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections = append(m.rejections, reason)
}

func (m *recordingMetrics) ObserveCancellation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancellations++
}

type fixture struct {
	service *Service
	slots   *slots.Repository
	ledger  *ledger.Repository
	metrics *recordingMetrics
}

func newFixture() *fixture {
	f := &fixture{
		slots:   slots.NewRepository(),
		ledger:  ledger.NewRepository(),
		metrics: &recordingMetrics{},
	}
	f.service = NewService(
		f.slots,
		f.ledger,
		txmanager.NewTransactionManager(),
		f.metrics,
		logger.NewWithWriter(io.Discard, logger.LevelDebug),
	)
	return f
}

func reserveReq(date domain.Date, station, from, to int, user string) *models.ReserveRequest {
	return &models.ReserveRequest{
		Date:     date,
		Station:  station,
		FromSlot: from,
		ToSlot:   to,
		User:     user,
	}
}

func TestReserve_Success(t *testing.T) {
	f := newFixture()

	tx, err := f.service.Reserve(context.Background(), reserveReq(tomorrow, 2, 0, 2, "john"), now)
	require.NoError(t, err)

	assert.Equal(t, "john", tx.User)
	assert.Equal(t, "PC-3", tx.ResourceID)
	assert.Equal(t, "1 PM to 3 PM", tx.TimeSlotLabel)
	assert.Equal(t, "50.00", tx.AmountPaid.StringFixed(2))
	assert.Equal(t, tomorrow, tx.BookingDate)
	assert.Equal(t, now, tx.CreatedAt)

	for slot := 0; slot <= 2; slot++ {
		user, ok := f.slots.BookedBy(tomorrow, 2, slot)
		assert.True(t, ok)
		assert.Equal(t, "john", user)
	}
	assert.False(t, f.slots.IsBooked(tomorrow, 2, 3))

	last, ok := f.ledger.Last()
	require.True(t, ok)
	assert.Equal(t, tx.ID, last.ID)
	assert.Equal(t, 1, f.metrics.bookings)
	assert.Equal(t, 3, f.metrics.hours)
}

func TestReserve_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		req    *models.ReserveRequest
		err    error
		reason string
	}{
		{
			name:   "inverted range",
			req:    reserveReq(tomorrow, 0, 5, 4, "john"),
			err:    ErrInvalidRange,
			reason: "invalid_range",
		},
		{
			name:   "past date",
			req:    reserveReq(today.AddDays(-1), 0, 0, 0, "john"),
			err:    ErrPastDate,
			reason: "past_date",
		},
		{
			name:   "station out of range",
			req:    reserveReq(tomorrow, domain.NumStations, 0, 0, "john"),
			err:    ErrInvalidInput,
			reason: "invalid_input",
		},
		{
			name:   "slot out of range",
			req:    reserveReq(tomorrow, 0, 0, domain.NumSlots, "john"),
			err:    ErrInvalidInput,
			reason: "invalid_input",
		},
		{
			name:   "empty user",
			req:    reserveReq(tomorrow, 0, 0, 0, ""),
			err:    ErrInvalidInput,
			reason: "invalid_input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			tx, err := f.service.Reserve(context.Background(), tt.req, now)

			assert.Nil(t, tx)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, []string{tt.reason}, f.metrics.rejections)
			assert.Equal(t, 0, f.ledger.Len())
		})
	}
}

func TestReserve_SameDayBoundary(t *testing.T) {
	// 14:00: слот 0 (13:00) прошел, слот 1 (14:00) идет прямо сейчас
	at2pm := time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, now.Location())
	f := newFixture()

	_, err := f.service.Reserve(context.Background(), reserveReq(today, 0, 0, 0, "john"), at2pm)
	assert.ErrorIs(t, err, ErrSlotInPast)

	_, err = f.service.Reserve(context.Background(), reserveReq(today, 0, 1, 1, "john"), at2pm)
	assert.ErrorIs(t, err, ErrSlotInPast)

	_, err = f.service.Reserve(context.Background(), reserveReq(today, 0, 1, 3, "john"), at2pm)
	assert.ErrorIs(t, err, ErrSlotInPast)
	assert.False(t, f.slots.IsBooked(today, 0, 2))

	_, err = f.service.Reserve(context.Background(), reserveReq(today, 0, 2, 2, "john"), at2pm)
	assert.NoError(t, err)

	// Дата в будущем не ограничена текущим часом
	_, err = f.service.Reserve(context.Background(), reserveReq(tomorrow, 0, 0, 0, "john"), at2pm)
	assert.NoError(t, err)
}

func TestReserve_NoDoubleBooking(t *testing.T) {
	f := newFixture()

	_, err := f.service.Reserve(context.Background(), reserveReq(tomorrow, 4, 3, 3, "kai"), now)
	require.NoError(t, err)

	_, err = f.service.Reserve(context.Background(), reserveReq(tomorrow, 4, 3, 3, "john"), now)
	assert.ErrorIs(t, err, ErrSlotConflict)

	user, _ := f.slots.BookedBy(tomorrow, 4, 3)
	assert.Equal(t, "kai", user)

	// Та же станция и слот на другую дату свободны
	_, err = f.service.Reserve(context.Background(), reserveReq(tomorrow.AddDays(1), 4, 3, 3, "john"), now)
	assert.NoError(t, err)
}

func TestReserve_RangeIsAtomic(t *testing.T) {
	f := newFixture()

	_, err := f.service.Reserve(context.Background(), reserveReq(tomorrow, 0, 2, 2, "kai"), now)
	require.NoError(t, err)

	_, err = f.service.Reserve(context.Background(), reserveReq(tomorrow, 0, 0, 4, "john"), now)
	require.ErrorIs(t, err, ErrSlotConflict)

	for _, slot := range []int{0, 1, 3, 4} {
		assert.False(t, f.slots.IsBooked(tomorrow, 0, slot), "slot %d must stay free", slot)
	}
	assert.Equal(t, 1, f.ledger.Len())
	assert.Equal(t, []string{"slot_conflict"}, f.metrics.rejections)
}

func TestReserve_Concurrent(t *testing.T) {
	f := newFixture()

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Перекрывающиеся диапазоны: [i%8, i%8+2]
			from := i % 8
			_, err := f.service.Reserve(context.Background(), reserveReq(tomorrow, 7, from, from+2, "user"), now)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrSlotConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, succeeded+conflicts)
	assert.Equal(t, succeeded, f.ledger.Len())

	// Успешные диапазоны не пересекаются и занимают ровно 3 слота каждый
	booked := 0
	grid := f.slots.Snapshot(tomorrow)
	for slot := 0; slot < domain.NumSlots; slot++ {
		if grid[7][slot].Booked {
			booked++
		}
	}
	assert.Equal(t, succeeded*3, booked)

	owner := make(map[int]string)
	for _, tx := range f.ledger.All() {
		for slot := tx.FromSlot; slot <= tx.ToSlot; slot++ {
			_, taken := owner[slot]
			assert.False(t, taken, "slot %d booked twice", slot)
			owner[slot] = tx.ID.String()
		}
	}
}

func TestCancel(t *testing.T) {
	f := newFixture()

	_, err := f.service.Reserve(context.Background(), reserveReq(tomorrow, 1, 0, 1, "john"), now)
	require.NoError(t, err)

	req := &models.CancelRequest{Date: tomorrow, Station: 1, Slot: 0}

	require.NoError(t, f.service.Cancel(context.Background(), req))
	assert.False(t, f.slots.IsBooked(tomorrow, 1, 0))
	assert.True(t, f.slots.IsBooked(tomorrow, 1, 1))

	err = f.service.Cancel(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotBooked)

	// Журнал не меняется при отмене
	assert.Equal(t, 1, f.ledger.Len())
	assert.Equal(t, 1, f.metrics.cancellations)

	// Освобожденный слот можно забронировать снова
	_, err = f.service.Reserve(context.Background(), reserveReq(tomorrow, 1, 0, 0, "kai"), now)
	assert.NoError(t, err)
}

func TestCancel_InvalidInput(t *testing.T) {
	f := newFixture()

	err := f.service.Cancel(context.Background(), &models.CancelRequest{Date: tomorrow, Station: -1, Slot: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = f.service.Cancel(context.Background(), &models.CancelRequest{Station: 0, Slot: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAvailability(t *testing.T) {
	f := newFixture()

	_, err := f.service.Reserve(context.Background(), reserveReq(tomorrow, 0, 1, 1, "john"), now)
	require.NoError(t, err)

	resp, err := f.service.Availability(context.Background(), tomorrow)
	require.NoError(t, err)

	assert.Equal(t, tomorrow.String(), resp.Date)
	require.Len(t, resp.Stations, domain.NumStations)
	require.Len(t, resp.Stations[0].Slots, domain.NumSlots)

	assert.Equal(t, "PC-1", resp.Stations[0].Name)
	assert.Equal(t, "Available", resp.Stations[0].Slots[0].Status)
	assert.Equal(t, "Booked by john", resp.Stations[0].Slots[1].Status)
	assert.Equal(t, "2 PM", resp.Stations[0].Slots[1].Label)
	assert.Equal(t, 14, resp.Stations[0].Slots[1].Hour)
	assert.Equal(t, "Available", resp.Stations[1].Slots[1].Status)
}
