package metrics

import (
	"context"
	"time"
)

// DefaultCollectInterval период сбора метрик загрузки по умолчанию
const DefaultCollectInterval = 15 * time.Second

// CourseLoad загрузка одного курса
type CourseLoad struct {
	Name   string
	Booked int
	Total  int
}

// DateLoad количество записей на дату
type DateLoad struct {
	Date  string
	Count int
}

// CapacitySnapshot срез загрузки каталога на момент сбора
type CapacitySnapshot struct {
	Courses    []CourseLoad
	Dates      []DateLoad
	LedgerSize int
}

// SnapshotSource источник среза загрузки (сервис статистики)
type SnapshotSource interface {
	CapacitySnapshot(ctx context.Context) (CapacitySnapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Observe записывает срез в gauge-метрики
func (m *Metrics) Observe(s CapacitySnapshot) {
	for _, c := range s.Courses {
		m.CourseBookedSlots.WithLabelValues(c.Name).Set(float64(c.Booked))
		m.CourseTotalSlots.WithLabelValues(c.Name).Set(float64(c.Total))
	}
	for _, d := range s.Dates {
		m.DateAppointments.WithLabelValues(d.Date).Set(float64(d.Count))
	}
	m.LedgerSize.Set(float64(s.LedgerSize))
}

// StartCapacityCollector периодически снимает срез загрузки и обновляет метрики.
// Сбор останавливается при закрытии stopCh.
func StartCapacityCollector(m *Metrics, source SnapshotSource, interval time.Duration, stopCh <-chan struct{}, log Logger) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	collect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()

		snapshot, err := source.CapacitySnapshot(ctx)
		if err != nil {
			log.Warn("metrics: failed to collect capacity snapshot: %v", err)
			return
		}
		m.Observe(snapshot)
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		collect()
		for {
			select {
			case <-ticker.C:
				collect()
			case <-stopCh:
				return
			}
		}
	}()
}
