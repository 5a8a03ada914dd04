package domain

import "time"

// ReservedDateLayout is the backend's travel-date format: YYYY.M.D with
// no zero padding of month or day.
const ReservedDateLayout = "2006.1.2"

// BookingHorizonDays bounds both the booking window and the edit window.
const BookingHorizonDays = 30

// FormatReservedDate renders a calendar date in the backend's format.
func FormatReservedDate(t time.Time) string {
	return t.Format(ReservedDateLayout)
}

// ParseReservedDate parses a stored travel date.
func ParseReservedDate(s string) (time.Time, error) {
	return time.Parse(ReservedDateLayout, s)
}

// DaysUntil counts whole calendar days from today to date, ignoring the
// time of day. Negative for past dates.
func DaysUntil(today, date time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t) / (24 * time.Hour))
}

// InBookingWindow reports whether date may be booked on today. Both
// bounds are exclusive: same-day travel and travel exactly 30 days out
// are rejected.
func InBookingWindow(today, date time.Time) bool {
	days := DaysUntil(today, date)
	return days > 0 && days < BookingHorizonDays
}

// InEditWindow reports whether a reservation on date may still be
// edited on today. Unlike the booking window this bound is inclusive.
func InEditWindow(today, date time.Time) bool {
	return DaysUntil(today, date) <= BookingHorizonDays
}
