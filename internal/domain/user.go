package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("no user record matches the email")
	ErrSessionRequired = errors.New("no active session, sign in first")
)

// User is the traveler record as the backend stores it.
type User struct {
	ID       string
	Email    string
	Name     string
	Phone    string
	NIC      string
	Verified bool
}

// Session binds one bearer token to the authenticated traveler. It is
// created by authentication, passed explicitly to every call that needs
// it, and destroyed on logout, deactivation or a rejected token.
type Session struct {
	Token string
	User  User
}

// Registration is the sign-up payload. All fields must already have
// passed validation before it reaches the gateway.
type Registration struct {
	Phone    string
	Email    string
	Name     string
	NIC      string
	Password string
}
