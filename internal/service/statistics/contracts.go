package statistics

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// LedgerRepository интерфейс журнала записей (только чтение)
type LedgerRepository interface {
	All(ctx context.Context) ([]*domain.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]*domain.Appointment, error)
	Count(ctx context.Context) (int, error)
}

// InventoryRepository интерфейс хранилища счётчиков мест (только чтение)
type InventoryRepository interface {
	Course(name string) (*domain.Course, error)
	Courses() []*domain.Course
	SlotsForDate(date string) ([]*domain.DateTimeSlot, error)
	Dates() []string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
