package receipts

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// MultiSink передает квитанцию во все приемники по очереди.
// Ошибка одного приемника не мешает остальным.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink объединяет несколько приемников
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Emit возвращает ссылки успешных приемников через запятую и объединенную ошибку
func (m *MultiSink) Emit(ctx context.Context, tx *domain.Transaction) (string, error) {
	var (
		refs []string
		errs []error
	)

	for _, sink := range m.sinks {
		ref, err := sink.Emit(ctx, tx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		refs = append(refs, ref)
	}

	return strings.Join(refs, ","), errors.Join(errs...)
}
