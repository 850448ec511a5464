package create_booking

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// LedgerRepository интерфейс журнала записей
type LedgerRepository interface {
	Insert(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// InventoryRepository интерфейс хранилища счётчиков мест
type InventoryRepository interface {
	Course(name string) (*domain.Course, error)
	Slot(date, time string) (*domain.DateTimeSlot, error)
	SlotsForDate(date string) ([]*domain.DateTimeSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учёта исходов бронирования
type MetricsRecorder interface {
	RecordBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
