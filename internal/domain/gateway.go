package domain

import (
	"context"
	"errors"
)

var (
	// ErrUnauthorized means the backend rejected the credentials or the
	// bearer token. The session holding that token is dead; the caller
	// must re-authenticate.
	ErrUnauthorized = errors.New("authorization rejected by the backend")

	// ErrNotFound maps a 404 from the record store.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable covers transport failures and timeouts. They are
	// indistinguishable to the traveler and never retried automatically.
	ErrUnavailable = errors.New("service unavailable")
)

// Gateway is the record-store backend as the core sees it. Every call is
// one network round trip; calls within a single user action are made
// strictly in sequence.
type Gateway interface {
	Authenticate(ctx context.Context, identity, password string) (*Session, error)
	Register(ctx context.Context, reg Registration) (*User, error)
	UserByEmail(ctx context.Context, token, email string) ([]*User, error)
	UpdateUser(ctx context.Context, token string, user User) (*User, error)
	Trains(ctx context.Context, token string) ([]*Train, error)
	SchedulesByLabel(ctx context.Context, token, label string) ([]*ScheduleSlot, error)
	CreateReservation(ctx context.Context, token string, draft Draft) (*Reservation, error)
	Reservations(ctx context.Context, token string) ([]*Reservation, error)
	UpdateReservation(ctx context.Context, token, id string, payload Draft) (*Reservation, error)
}
