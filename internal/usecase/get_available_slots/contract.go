package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// InventoryRepository интерфейс хранилища счётчиков мест
type InventoryRepository interface {
	Catalog() domain.Catalog
	Courses() []*domain.Course
	Dates() []string
	SlotsForDate(date string) ([]*domain.DateTimeSlot, error)
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
