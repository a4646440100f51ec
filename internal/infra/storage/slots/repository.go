package slots

import (
	"sync"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// Repository in-memory хранилище состояний слотов, сгруппированных по датам.
// Сетка на дату создается лениво при первом обращении к ней.
// Индексы вне [0, NumStations) x [0, NumSlots) приводят к панике:
// это нарушение контракта вызывающей стороны.
type Repository struct {
	mu    sync.RWMutex
	grids map[domain.Date]*domain.Grid
}

// NewRepository создает пустое хранилище слотов
func NewRepository() *Repository {
	return &Repository{
		grids: make(map[domain.Date]*domain.Grid),
	}
}

// IsBooked возвращает признак занятости слота
func (r *Repository) IsBooked(date domain.Date, station, slot int) bool {
	return r.state(date, station, slot).Booked
}

// BookedBy возвращает пользователя, занявшего слот.
// ok = false, если слот свободен.
func (r *Repository) BookedBy(date domain.Date, station, slot int) (string, bool) {
	s := r.state(date, station, slot)
	return s.BookedBy, s.Booked
}

// TrySet занимает слот за пользователем.
// Возвращает false без изменений, если слот уже занят.
func (r *Repository) TrySet(date domain.Date, station, slot int, user string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cell := &r.gridLocked(date)[station][slot]
	if cell.Booked {
		return false
	}
	cell.Booked = true
	cell.BookedBy = user
	return true
}

// Clear освобождает слот. Повторный вызов ничего не меняет.
func (r *Repository) Clear(date domain.Date, station, slot int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gridLocked(date)[station][slot] = domain.SlotState{}
}

// Snapshot возвращает копию сетки на дату
func (r *Repository) Snapshot(date domain.Date) domain.Grid {
	r.mu.RLock()
	if g, ok := r.grids[date]; ok {
		defer r.mu.RUnlock()
		return *g
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.gridLocked(date)
}

// Dates возвращает количество дат, для которых создана сетка
func (r *Repository) Dates() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.grids)
}

func (r *Repository) state(date domain.Date, station, slot int) domain.SlotState {
	r.mu.RLock()
	if g, ok := r.grids[date]; ok {
		defer r.mu.RUnlock()
		return g[station][slot]
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gridLocked(date)[station][slot]
}

// gridLocked возвращает сетку на дату, создавая ее при необходимости.
// Вызывающий должен держать r.mu на запись.
func (r *Repository) gridLocked(date domain.Date) *domain.Grid {
	g, ok := r.grids[date]
	if !ok {
		g = &domain.Grid{}
		r.grids[date] = g
	}
	return g
}
