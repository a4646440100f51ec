package domain

import "fmt"

// SlotState состояние одного слота станции на дату.
// BookedBy заполнен тогда и только тогда, когда Booked = true.
type SlotState struct {
	Booked   bool
	BookedBy string
}

// Label возвращает подпись ячейки сетки доступности
func (s SlotState) Label() string {
	if !s.Booked {
		return SlotAvailableLabel
	}
	return SlotBookedByPrefix + s.BookedBy
}

// Grid сетка состояний всех слотов всех станций на одну дату
type Grid [NumStations][NumSlots]SlotState

// SlotStartHour возвращает час начала слота (24-часовой формат)
func SlotStartHour(slot int) int {
	return FirstSlotHour + slot
}

// SlotLabel возвращает подпись слота, например "1 PM"
func SlotLabel(slot int) string {
	return fmt.Sprintf("%d PM", slot+1)
}

// SlotRangeLabel возвращает подпись диапазона слотов, например "1 PM to 3 PM"
func SlotRangeLabel(fromSlot, toSlot int) string {
	return SlotLabel(fromSlot) + " to " + SlotLabel(toSlot)
}

// StationLabel возвращает отображаемое имя станции, например "PC-1"
func StationLabel(station int) string {
	return fmt.Sprintf("%s%d", StationLabelPrefix, station+1)
}

// IsValidStation returns true if the station index is inside the pool
func IsValidStation(station int) bool {
	return station >= 0 && station < NumStations
}

// IsValidSlot returns true if the slot index is inside the daily grid
func IsValidSlot(slot int) bool {
	return slot >= 0 && slot < NumSlots
}
