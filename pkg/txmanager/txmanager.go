package txmanager

import (
	"context"
	"sync"
)

type ctxKey struct{}

// Manager менеджер транзакций над in-memory хранилищами процесса.
// Сериализуемые транзакции выполняются эксклюзивно, read-only транзакции
// выполняются параллельно друг с другом, но не с сериализуемыми.
// Вложенный вызов внутри уже открытой транзакции выполняется без повторного
// захвата блокировки.
type Manager struct {
	mu sync.RWMutex
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager() *Manager {
	return &Manager{}
}

// Do выполняет fn в эксклюзивной транзакции
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn эксклюзивно относительно всех остальных транзакций
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, ctxKey{}, true))
}

// DoReadOnly выполняет fn под разделяемой блокировкой
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(context.WithValue(ctx, ctxKey{}, true))
}

// IsInTransaction returns true if ctx was produced by one of the Do* methods
func IsInTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKey{}).(bool)
	return v
}
