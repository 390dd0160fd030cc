package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for public holidays.
type HolidayRepository interface {
	// GetByDate retrieves the holiday registered for a calendar date, or nil
	// when the date is a regular working day.
	GetByDate(ctx context.Context, date time.Time) (*PublicHoliday, error)

	// Create inserts a new holiday; the date must not be taken.
	Create(ctx context.Context, hol PublicHoliday) (PublicHoliday, error)

	// List retrieves all holidays ordered by date.
	List(ctx context.Context) ([]PublicHoliday, error)

	// Delete removes a holiday by ID.
	Delete(ctx context.Context, id string) error
}
