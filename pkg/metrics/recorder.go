package metrics

import "time"

// Методы ниже безопасны для nil-получателя: при выключенных метриках
// сервисы получают nil *Metrics и вызовы становятся no-op.

// ObserveBooking учитывает успешное бронирование
func (m *Metrics) ObserveBooking(hours int, amount float64) {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
	m.BookedHours.Add(float64(hours))
	m.Revenue.Add(amount)
}

// ObserveRejection учитывает отклоненное бронирование
func (m *Metrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

// ObserveCancellation учитывает отмену слота
func (m *Metrics) ObserveCancellation() {
	if m == nil {
		return
	}
	m.Cancellations.Inc()
}

// ObserveSweep учитывает проход очистки просроченных слотов
func (m *Metrics) ObserveSweep(released int, took time.Duration) {
	if m == nil {
		return
	}
	m.SlotsReleased.Add(float64(released))
	m.SweepDuration.Observe(took.Seconds())
}

// ObserveReceipt учитывает выпуск квитанции
func (m *Metrics) ObserveReceipt(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.ReceiptsEmitted.WithLabelValues(result).Inc()
}

// SetLedgerSize обновляет размер журнала транзакций
func (m *Metrics) SetLedgerSize(n int) {
	if m == nil {
		return
	}
	m.LedgerSize.Set(float64(n))
}
