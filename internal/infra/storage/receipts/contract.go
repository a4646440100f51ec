package receipts

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// Sink приемник квитанций
type Sink interface {
	Emit(ctx context.Context, tx *domain.Transaction) (string, error)
}

// DBExecutor интерфейс для выполнения запросов (*sql.DB, *sql.Tx)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
