package statistics

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
	"github.com/m04kA/SMC-AdvisingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-AdvisingService/internal/service/statistics/models"
	"github.com/m04kA/SMC-AdvisingService/pkg/metrics"
)

// Service сервис статистики. Только читает журнал и счётчики, никогда их не изменяет
type Service struct {
	ledger    LedgerRepository
	inventory InventoryRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	ledger LedgerRepository,
	inventory InventoryRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		ledger:    ledger,
		inventory: inventory,
		txManager: txManager,
		logger:    logger,
	}
}

// IsDateFullyBooked true, если во всех слотах даты нет свободных мест
func (s *Service) IsDateFullyBooked(ctx context.Context, date string) (bool, error) {
	var full bool
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		slots, err := s.inventory.SlotsForDate(date)
		if err != nil {
			if errors.Is(err, inventory.ErrDateNotFound) {
				return ErrDateNotFound
			}
			return fmt.Errorf("%w: IsDateFullyBooked - %v", ErrInternal, err)
		}
		full = isDateFullyBooked(slots)
		return nil
	})
	return full, err
}

// AllDatesFullyBooked true, если все даты каталога полностью заняты
func (s *Service) AllDatesFullyBooked(ctx context.Context) (bool, error) {
	all := true
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		for _, date := range s.inventory.Dates() {
			slots, err := s.inventory.SlotsForDate(date)
			if err != nil {
				return fmt.Errorf("%w: AllDatesFullyBooked - %v", ErrInternal, err)
			}
			if !isDateFullyBooked(slots) {
				all = false
				return nil
			}
		}
		return nil
	})
	return all, err
}

// CourseOccupancy загрузка курса в процентах (booked/total*100)
func (s *Service) CourseOccupancy(ctx context.Context, courseName string) (float64, error) {
	var occupancy float64
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		course, err := s.inventory.Course(courseName)
		if err != nil {
			if errors.Is(err, inventory.ErrCourseNotFound) {
				return ErrCourseNotFound
			}
			return fmt.Errorf("%w: CourseOccupancy - %v", ErrInternal, err)
		}
		occupancy = percent(course.BookedSlots(), course.TotalSlots())
		return nil
	})
	return occupancy, err
}

// BusiestDate дата с наибольшим числом записей. ok=false, если записей нет
func (s *Service) BusiestDate(ctx context.Context) (*models.BusiestDate, bool, error) {
	byDate, err := s.ByDateBreakdown(ctx)
	if err != nil {
		return nil, false, err
	}

	best := busiestDate(byDate)
	return best, best != nil, nil
}

// ByCourseBreakdown количество записей по курсам (порядок каталога)
func (s *Service) ByCourseBreakdown(ctx context.Context) ([]models.Breakdown, error) {
	var result []models.Breakdown
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		appointments, err := s.ledger.All(ctx)
		if err != nil {
			return fmt.Errorf("%w: ByCourseBreakdown - ledger error: %v", ErrInternal, err)
		}
		result = countBy(courseNames(s.inventory.Courses()), appointments, func(a *domain.Appointment) string {
			return a.Course
		})
		return nil
	})
	return result, err
}

// ByDateBreakdown количество записей по датам (порядок каталога)
func (s *Service) ByDateBreakdown(ctx context.Context) ([]models.Breakdown, error) {
	var result []models.Breakdown
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		appointments, err := s.ledger.All(ctx)
		if err != nil {
			return fmt.Errorf("%w: ByDateBreakdown - ledger error: %v", ErrInternal, err)
		}
		result = countBy(s.inventory.Dates(), appointments, func(a *domain.Appointment) string {
			return a.Date
		})
		return nil
	})
	return result, err
}

// OverallOccupancy доля всех записей от суммарной вместимости курсов
func (s *Service) OverallOccupancy(ctx context.Context) (float64, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.OverallOccupancy, nil
}

// Stats собирает сводную статистику одним согласованным срезом
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	var resp *models.StatsResponse
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		appointments, err := s.ledger.All(ctx)
		if err != nil {
			return fmt.Errorf("%w: Stats - ledger error: %v", ErrInternal, err)
		}

		courses := s.inventory.Courses()
		occupancy := make([]models.CourseOccupancy, len(courses))
		for i, c := range courses {
			occupancy[i] = courseOccupancy(c)
		}

		byDate := countBy(s.inventory.Dates(), appointments, func(a *domain.Appointment) string { return a.Date })
		total := totalSlots(courses)

		resp = &models.StatsResponse{
			TotalBooked:      len(appointments),
			TotalSlots:       total,
			OverallOccupancy: percent(len(appointments), total),
			ByCourse: countBy(courseNames(courses), appointments, func(a *domain.Appointment) string {
				return a.Course
			}),
			ByDate:      byDate,
			Occupancy:   occupancy,
			BusiestDate: busiestDate(byDate),
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Stats: failed to build statistics: %v", err)
		return nil, err
	}

	s.logger.Info("Stats: total booked=%d, overall occupancy=%.1f%%", resp.TotalBooked, resp.OverallOccupancy)
	return resp, nil
}

// CapacitySnapshot срез загрузки для сборщика метрик
func (s *Service) CapacitySnapshot(ctx context.Context) (metrics.CapacitySnapshot, error) {
	var snapshot metrics.CapacitySnapshot
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		for _, c := range s.inventory.Courses() {
			snapshot.Courses = append(snapshot.Courses, metrics.CourseLoad{
				Name:   c.Name,
				Booked: c.BookedSlots(),
				Total:  c.TotalSlots(),
			})
		}
		for _, date := range s.inventory.Dates() {
			onDate, err := s.ledger.FindByDate(ctx, date)
			if err != nil {
				return fmt.Errorf("%w: CapacitySnapshot - ledger error: %v", ErrInternal, err)
			}
			snapshot.Dates = append(snapshot.Dates, metrics.DateLoad{Date: date, Count: len(onDate)})
		}

		size, err := s.ledger.Count(ctx)
		if err != nil {
			return fmt.Errorf("%w: CapacitySnapshot - ledger error: %v", ErrInternal, err)
		}
		snapshot.LedgerSize = size
		return nil
	})
	return snapshot, err
}
