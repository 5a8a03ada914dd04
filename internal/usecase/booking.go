package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/moshdev2213/letsbook/internal/domain"
)

// BookingUsecase drives a reservation through its lifecycle: build a
// draft, submit it, then edit or soft-cancel the created record. Every
// backend failure is terminal for that user action; the traveler has to
// start it again.
type BookingUsecase struct {
	gw  domain.Gateway
	now func() time.Time
}

func NewBookingUsecase(gw domain.Gateway) *BookingUsecase {
	return &BookingUsecase{
		gw:  gw,
		now: time.Now,
	}
}

func (b *BookingUsecase) Trains(ctx context.Context, s *domain.Session) ([]*domain.Train, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	return b.gw.Trains(ctx, s.Token)
}

// ResolveSchedule turns a free-text label into exactly one slot. Zero
// and multiple matches are distinct errors; the first row of a filter
// result is never trusted blindly.
func (b *BookingUsecase) ResolveSchedule(ctx context.Context, s *domain.Session, label string) (*domain.ScheduleSlot, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	slots, err := b.gw.SchedulesByLabel(ctx, s.Token, label)
	if err != nil {
		return nil, err
	}
	switch len(slots) {
	case 0:
		return nil, domain.ErrScheduleNotFound
	case 1:
		return slots[0], nil
	default:
		return nil, &domain.AmbiguousScheduleError{Label: label, Count: len(slots)}
	}
}

// BuildDraft resolves the schedule, checks the travel date against the
// booking window and assembles the draft. The sub-calls run in that
// order, one at a time. Both window bounds are exclusive: same-day
// travel and travel exactly 30 days out are rejected.
func (b *BookingUsecase) BuildDraft(ctx context.Context, s *domain.Session, train *domain.Train, scheduleLabel string, seats int, date time.Time) (*domain.Draft, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	if seats <= 0 {
		return nil, domain.ErrSeatsRequired
	}
	slot, err := b.ResolveSchedule(ctx, s, scheduleLabel)
	if err != nil {
		return nil, err
	}
	if !domain.InBookingWindow(b.now(), date) {
		return nil, domain.ErrDateOutOfRange
	}
	return &domain.Draft{
		TrainID:    train.ID,
		ScheduleID: slot.ID,
		Email:      s.User.Email,
		Reserved:   domain.FormatReservedDate(date),
		Seats:      seats,
		Cancelled:  domain.NotCancelled,
	}, nil
}

// Submit sends the draft. On failure the draft is spent anyway; no
// automatic retry.
func (b *BookingUsecase) Submit(ctx context.Context, s *domain.Session, d *domain.Draft) (*domain.Reservation, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	return b.gw.CreateReservation(ctx, s.Token, *d)
}

// Reservations lists the first page of the traveler's records, the
// cancelled ones included. Hiding those is the caller's choice.
func (b *BookingUsecase) Reservations(ctx context.Context, s *domain.Session) ([]*domain.Reservation, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	return b.gw.Reservations(ctx, s.Token)
}

// Edit replaces the seat count and nothing else. It is only allowed
// while the reserved date is at most 30 days out, inclusive.
func (b *BookingUsecase) Edit(ctx context.Context, s *domain.Session, r *domain.Reservation, seats int) (*domain.Reservation, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	if seats <= 0 {
		return nil, domain.ErrSeatsRequired
	}
	reserved, err := domain.ParseReservedDate(r.Reserved)
	if err != nil {
		return nil, fmt.Errorf("reserved date %q: %w", r.Reserved, err)
	}
	if !domain.InEditWindow(b.now(), reserved) {
		return nil, domain.ErrEditWindowClosed
	}
	payload := r.Payload()
	payload.Seats = seats
	return b.gw.UpdateReservation(ctx, s.Token, r.ID, payload)
}

// Cancel sets the soft flag and resends the rest of the record
// unchanged. The record stays visible in listings.
func (b *BookingUsecase) Cancel(ctx context.Context, s *domain.Session, r *domain.Reservation) (*domain.Reservation, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	payload := r.Payload()
	payload.Cancelled = domain.Cancelled
	return b.gw.UpdateReservation(ctx, s.Token, r.ID, payload)
}
