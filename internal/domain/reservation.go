package domain

import "errors"

var (
	ErrDateOutOfRange   = errors.New("travel date must be after today and within 30 days")
	ErrEditWindowClosed = errors.New("reservation date exceeded 30 days")
	ErrSeatsRequired    = errors.New("seat count must be a positive number")
)

// Cancellation is a soft flag on the record, never a deletion.
const (
	NotCancelled = 0
	Cancelled    = 1
)

// Draft is an unsubmitted reservation request. It is built once the
// traveler confirms a date and consumed exactly once by Submit; it is
// discarded after submission whatever the outcome.
type Draft struct {
	TrainID    string
	ScheduleID string
	Email      string
	Reserved   string // formatted YYYY.M.D, no zero padding
	Seats      int
	Cancelled  int
}

// Reservation is the server-held record. The id is assigned by the
// backend on creation.
type Reservation struct {
	ID         string
	TrainID    string
	ScheduleID string
	Email      string
	Reserved   string
	Seats      int
	Cancelled  int
	Created    string
	Updated    string
}

// IsCancelled reports the soft-cancellation flag. Cancelled records stay
// in listings; filtering them out is the presentation layer's call.
func (r *Reservation) IsCancelled() bool {
	return r.Cancelled == Cancelled
}

// Payload rebuilds the full-record update body the backend expects on
// PATCH: every field is resent, only what the caller changed differs.
func (r *Reservation) Payload() Draft {
	return Draft{
		TrainID:    r.TrainID,
		ScheduleID: r.ScheduleID,
		Email:      r.Email,
		Reserved:   r.Reserved,
		Seats:      r.Seats,
		Cancelled:  r.Cancelled,
	}
}
