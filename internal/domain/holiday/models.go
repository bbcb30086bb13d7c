package holiday

import "time"

type Holiday struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// Dates projects a holiday list to the bare date sequence the calculators
// consume.
func Dates(holidays []Holiday) []time.Time {
	dates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return dates
}
