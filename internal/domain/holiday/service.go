package holiday

import (
	"context"
)

// HolidayService manages the public holiday calendar consulted by the
// report scheduler.
type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
