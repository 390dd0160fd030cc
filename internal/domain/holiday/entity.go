package holiday

import (
	"time"
)

// PublicHoliday selects the alternate report send hour for its date. Dates
// are unique, enforced by the database.
type PublicHoliday struct {
	ID   string
	Date time.Time
	Name string
}
