package holiday

import (
	"context"
	"fmt"

	"github.com/clinika/kiosk-backend-go/internal/domain/holiday"
	"github.com/clinika/kiosk-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
	}
}

// CreateHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := h.HolidayRepository.Create(ctx, holiday.PublicHoliday{
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (h *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := h.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, holiday.ToResponse(hol))
	}
	return responses, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return h.HolidayRepository.Delete(ctx, id)
}
