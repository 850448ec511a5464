package txmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует доступ к состоянию в памяти (каталог, счётчики, журнал).
// Одна глобальная блокировка на все операции: запись эксклюзивна, чтение разделяемое.
type TransactionManager struct {
	mu sync.RWMutex
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// DoSerializable выполняет fn эксклюзивно: никакая другая операция не видит
// промежуточного состояния между проверкой и изменением
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}

// DoReadOnly выполняет fn под разделяемой блокировкой.
// fn не должна изменять состояние.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(ctx)
}
