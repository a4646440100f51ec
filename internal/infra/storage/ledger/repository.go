package ledger

import (
	"sync"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// Repository журнал транзакций только на добавление.
// Все выборки возвращают копии в порядке добавления.
type Repository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// NewRepository создает пустой журнал
func NewRepository() *Repository {
	return &Repository{}
}

// Append добавляет транзакцию в конец журнала без проверок и дедупликации
func (r *Repository) Append(tx domain.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, tx)
}

// All возвращает все транзакции
func (r *Repository) All() []domain.Transaction {
	return r.filter(func(domain.Transaction) bool { return true })
}

// ByUser возвращает транзакции пользователя
func (r *Repository) ByUser(user string) []domain.Transaction {
	return r.filter(func(tx domain.Transaction) bool { return tx.User == user })
}

// ByDate возвращает транзакции с указанной датой бронирования
func (r *Repository) ByDate(date domain.Date) []domain.Transaction {
	return r.filter(func(tx domain.Transaction) bool { return tx.BookingDate == date })
}

// Last возвращает последнюю добавленную транзакцию
func (r *Repository) Last() (domain.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.transactions) == 0 {
		return domain.Transaction{}, false
	}
	return r.transactions[len(r.transactions)-1], true
}

// Len возвращает количество транзакций
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}

func (r *Repository) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if keep(tx) {
			result = append(result, tx)
		}
	}
	return result
}
