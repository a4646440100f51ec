package slots

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

var testDate = domain.NewDate(2025, time.March, 7)

func TestRepository_LazyGrid(t *testing.T) {
	repo := NewRepository()
	assert.Equal(t, 0, repo.Dates())

	assert.False(t, repo.IsBooked(testDate, 0, 0))
	assert.Equal(t, 1, repo.Dates())

	grid := repo.Snapshot(testDate.AddDays(1))
	assert.Equal(t, domain.SlotState{}, grid[19][9])
	assert.Equal(t, 2, repo.Dates())
}

func TestRepository_TrySet(t *testing.T) {
	repo := NewRepository()

	require.True(t, repo.TrySet(testDate, 3, 4, "john"))
	assert.False(t, repo.TrySet(testDate, 3, 4, "kai"))

	user, ok := repo.BookedBy(testDate, 3, 4)
	assert.True(t, ok)
	assert.Equal(t, "john", user)

	// Другая дата независима
	assert.False(t, repo.IsBooked(testDate.AddDays(1), 3, 4))
}

func TestRepository_Clear(t *testing.T) {
	repo := NewRepository()
	require.True(t, repo.TrySet(testDate, 0, 0, "john"))

	repo.Clear(testDate, 0, 0)
	repo.Clear(testDate, 0, 0)

	user, ok := repo.BookedBy(testDate, 0, 0)
	assert.False(t, ok)
	assert.Empty(t, user)
	assert.True(t, repo.TrySet(testDate, 0, 0, "kai"))
}

func TestRepository_SnapshotIsCopy(t *testing.T) {
	repo := NewRepository()
	require.True(t, repo.TrySet(testDate, 1, 1, "john"))

	grid := repo.Snapshot(testDate)
	grid[1][1] = domain.SlotState{}
	grid[2][2] = domain.SlotState{Booked: true, BookedBy: "mallory"}

	assert.True(t, repo.IsBooked(testDate, 1, 1))
	assert.False(t, repo.IsBooked(testDate, 2, 2))
}

func TestRepository_OutOfRangePanics(t *testing.T) {
	repo := NewRepository()

	assert.Panics(t, func() { repo.IsBooked(testDate, domain.NumStations, 0) })
	assert.Panics(t, func() { repo.TrySet(testDate, 0, domain.NumSlots, "john") })
	assert.Panics(t, func() { repo.Clear(testDate, -1, 0) })
}

func TestRepository_ConcurrentTrySet(t *testing.T) {
	repo := NewRepository()

	const workers = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if repo.TrySet(testDate, 5, 5, "user") {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}
