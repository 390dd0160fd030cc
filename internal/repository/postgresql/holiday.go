package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/holiday"
	"github.com/clinika/kiosk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// GetByDate implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, name
		FROM public_holidays
		WHERE date = $1
	`

	var hol holiday.PublicHoliday
	err := q.QueryRow(ctx, query, date).Scan(&hol.ID, &hol.Date, &hol.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}

	return &hol, nil
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, hol holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, h.db)

	if hol.ID == "" {
		hol.ID = uuid.NewString()
	}

	query := `
		INSERT INTO public_holidays (id, date, name)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, hol.ID, hol.Date, hol.Name); err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation on the date column
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.PublicHoliday{}, holiday.ErrDateExists
		}
		return holiday.PublicHoliday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return hol, nil
}

// List implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, name
		FROM public_holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var hol holiday.PublicHoliday
		if err := rows.Scan(&hol.ID, &hol.Date, &hol.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}

	return holidays, rows.Err()
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
