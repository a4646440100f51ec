package receipts

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/pkg/psqlbuilder"
)

const receiptsTable = "receipts"

// schema таблица архива выпущенных квитанций.
// Архив не используется для восстановления состояния слотов.
const schema = `CREATE TABLE IF NOT EXISTS receipts (
	id             UUID PRIMARY KEY,
	transaction_id UUID NOT NULL,
	customer       TEXT NOT NULL,
	computer       TEXT NOT NULL,
	booking_date   DATE NOT NULL,
	time_slot      TEXT NOT NULL,
	amount_paid    NUMERIC(12, 2) NOT NULL,
	created_at     TIMESTAMP NOT NULL,
	body           TEXT NOT NULL,
	emitted_at     TIMESTAMP NOT NULL DEFAULT NOW()
)`

// PostgresSink архивирует квитанции в таблицу PostgreSQL
type PostgresSink struct {
	db DBExecutor
}

// NewPostgresSink создает приемник квитанций поверх PostgreSQL
func NewPostgresSink(db DBExecutor) *PostgresSink {
	return &PostgresSink{db: db}
}

// EnsureSchema создает таблицу архива, если ее нет
func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Emit сохраняет квитанцию и возвращает ID записи архива
func (s *PostgresSink) Emit(ctx context.Context, tx *domain.Transaction) (string, error) {
	receiptID := uuid.New()

	query, args, err := psqlbuilder.Insert(receiptsTable).
		Columns(
			"id",
			"transaction_id",
			"customer",
			"computer",
			"booking_date",
			"time_slot",
			"amount_paid",
			"created_at",
			"body",
		).
		Values(
			receiptID,
			tx.ID,
			tx.User,
			tx.ResourceID,
			tx.BookingDate.String(),
			tx.TimeSlotLabel,
			tx.AmountPaid,
			tx.CreatedAt,
			tx.ReceiptText(),
		).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Emit - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("%w: Emit - execute insert: %v", ErrExecQuery, err)
	}

	return "receipts/" + receiptID.String(), nil
}
