package get_available_slots

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case для получения доступности курсов и слотов (экран "View Available Slots")
type UseCase struct {
	inventory InventoryRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	inventory InventoryRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		inventory: inventory,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateFilter := strings.TrimSpace(req.Date)
	uc.logger.Info("GetAvailableSlots: date filter=%q", dateFilter)

	var resp *Response
	err := uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		catalog := uc.inventory.Catalog()

		// 1. Доступность курсов
		courses := uc.inventory.Courses()
		courseItems := make([]CourseAvailability, len(courses))
		for i, c := range courses {
			courseItems[i] = courseAvailability(c, catalog.LimitedThreshold)
		}

		// 2. Доступность по датам; признак "все даты заняты" считается по всему каталогу
		dates := uc.inventory.Dates()
		dateItems := make([]DateAvailability, 0, len(dates))
		allFull := true
		found := dateFilter == ""

		for _, date := range dates {
			slots, err := uc.inventory.SlotsForDate(date)
			if err != nil {
				return fmt.Errorf("%w: failed to get slots for %q: %v", ErrInternal, date, err)
			}

			item := dateAvailability(date, slots)
			if !item.FullyBooked {
				allFull = false
			}

			if dateFilter != "" && date != dateFilter {
				continue
			}
			found = true
			dateItems = append(dateItems, item)
		}

		// 3. Неизвестная дата в фильтре
		if !found {
			return fmt.Errorf("%w: %q", ErrDateNotFound, dateFilter)
		}

		resp = &Response{
			Courses:             courseItems,
			Dates:               dateItems,
			AllDatesFullyBooked: allFull,
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed: %v", err)
		return nil, err
	}

	return resp, nil
}
