package usecase

import (
	"context"

	"github.com/moshdev2213/letsbook/internal/domain"
)

// fakeGateway is a scripted backend. Each field holds the canned reply
// for one call; calls records what reached the gateway.
type fakeGateway struct {
	session      *domain.Session
	user         *domain.User
	users        []*domain.User
	trains       []*domain.Train
	slots        []*domain.ScheduleSlot
	reservation  *domain.Reservation
	reservations []*domain.Reservation
	err          error

	calls       []string
	lastUser    domain.User
	lastDraft   domain.Draft
	lastID      string
	lastPayload domain.Draft
}

func (f *fakeGateway) Authenticate(_ context.Context, identity, password string) (*domain.Session, error) {
	f.calls = append(f.calls, "Authenticate")
	return f.session, f.err
}

func (f *fakeGateway) Register(_ context.Context, reg domain.Registration) (*domain.User, error) {
	f.calls = append(f.calls, "Register")
	return f.user, f.err
}

func (f *fakeGateway) UserByEmail(_ context.Context, token, email string) ([]*domain.User, error) {
	f.calls = append(f.calls, "UserByEmail")
	return f.users, f.err
}

func (f *fakeGateway) UpdateUser(_ context.Context, token string, user domain.User) (*domain.User, error) {
	f.calls = append(f.calls, "UpdateUser")
	f.lastUser = user
	if f.err != nil {
		return nil, f.err
	}
	return &user, nil
}

func (f *fakeGateway) Trains(_ context.Context, token string) ([]*domain.Train, error) {
	f.calls = append(f.calls, "Trains")
	return f.trains, f.err
}

func (f *fakeGateway) SchedulesByLabel(_ context.Context, token, label string) ([]*domain.ScheduleSlot, error) {
	f.calls = append(f.calls, "SchedulesByLabel")
	return f.slots, f.err
}

func (f *fakeGateway) CreateReservation(_ context.Context, token string, draft domain.Draft) (*domain.Reservation, error) {
	f.calls = append(f.calls, "CreateReservation")
	f.lastDraft = draft
	return f.reservation, f.err
}

func (f *fakeGateway) Reservations(_ context.Context, token string) ([]*domain.Reservation, error) {
	f.calls = append(f.calls, "Reservations")
	return f.reservations, f.err
}

func (f *fakeGateway) UpdateReservation(_ context.Context, token, id string, payload domain.Draft) (*domain.Reservation, error) {
	f.calls = append(f.calls, "UpdateReservation")
	f.lastID = id
	f.lastPayload = payload
	if f.err != nil {
		return nil, f.err
	}
	r := &domain.Reservation{
		ID:         id,
		TrainID:    payload.TrainID,
		ScheduleID: payload.ScheduleID,
		Email:      payload.Email,
		Reserved:   payload.Reserved,
		Seats:      payload.Seats,
		Cancelled:  payload.Cancelled,
	}
	return r, nil
}

func testSession() *domain.Session {
	return &domain.Session{
		Token: "tok",
		User:  domain.User{ID: "u1", Email: "mosh@dev.lk"},
	}
}
