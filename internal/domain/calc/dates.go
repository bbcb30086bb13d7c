package calc

import "time"

// normalizeDate strips the time-of-day portion so day arithmetic is not
// affected by timestamps or DST offsets in the inputs.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from `from` to `to`,
// exclusive of the end date. Negative when `to` precedes `from`.
func DaysBetween(from, to time.Time) int {
	return int(normalizeDate(to).Sub(normalizeDate(from)).Hours() / 24)
}

// DaysBetweenInclusive counts calendar days in the closed range [from, to].
// A range where from == to counts as one day.
func DaysBetweenInclusive(from, to time.Time) int {
	return DaysBetween(from, to) + 1
}

// YearsBetween returns whole years elapsed from `from` to `to`, accounting
// for month and day so that an anniversary not yet reached does not count.
func YearsBetween(from, to time.Time) int {
	from, to = normalizeDate(from), normalizeDate(to)
	years := to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
	}
	return years
}

// validateRange rejects ranges where from is after to.
func validateRange(from, to time.Time) error {
	if normalizeDate(from).After(normalizeDate(to)) {
		return ErrInvalidRange
	}
	return nil
}

// validateStrictRange additionally rejects degenerate single-day ranges.
func validateStrictRange(from, to time.Time) error {
	if !normalizeDate(from).Before(normalizeDate(to)) {
		return ErrInvalidRange
	}
	return nil
}
