package usecase

import (
	"context"
	"errors"

	"github.com/moshdev2213/letsbook/internal/domain"
	"github.com/moshdev2213/letsbook/internal/validation"
)

// AuthUsecase owns sign-in, sign-up and profile maintenance. Validation
// is a hard gate: nothing reaches the gateway until every field of the
// form is Valid.
type AuthUsecase struct {
	gw domain.Gateway
}

func NewAuthUsecase(gw domain.Gateway) *AuthUsecase {
	return &AuthUsecase{
		gw: gw,
	}
}

// SessionDead reports whether err means the backend rejected the bearer
// token. The caller must drop the session and send the traveler back to
// sign-in.
func SessionDead(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

func (a *AuthUsecase) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	form := validation.SignInForm{Email: email, Password: password}
	if rep := form.Validate(); !rep.OK() {
		return nil, &validation.Error{Fields: rep}
	}
	return a.gw.Authenticate(ctx, email, password)
}

func (a *AuthUsecase) SignUp(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	form := validation.SignUpForm{
		Phone:    reg.Phone,
		Email:    reg.Email,
		Name:     reg.Name,
		NIC:      reg.NIC,
		Password: reg.Password,
	}
	if rep := form.Validate(); !rep.OK() {
		return nil, &validation.Error{Fields: rep}
	}
	return a.gw.Register(ctx, reg)
}

// Profile fetches the traveler's own record by email filter. Zero
// matches is a distinct outcome, never an index into an empty page.
func (a *AuthUsecase) Profile(ctx context.Context, s *domain.Session) (*domain.User, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	users, err := a.gw.UserByEmail(ctx, s.Token, s.User.Email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users[0], nil
}

// UpdateProfile replaces name, phone and NIC. The backend expects the
// full record, so everything else is resent unchanged.
func (a *AuthUsecase) UpdateProfile(ctx context.Context, s *domain.Session, name, phone, nic string) (*domain.User, error) {
	if s == nil {
		return nil, domain.ErrSessionRequired
	}
	form := validation.ProfileForm{Name: name, Phone: phone, NIC: nic}
	if rep := form.Validate(); !rep.OK() {
		return nil, &validation.Error{Fields: rep}
	}
	current, err := a.Profile(ctx, s)
	if err != nil {
		return nil, err
	}
	updated := *current
	updated.Name = name
	updated.Phone = phone
	updated.NIC = nic
	return a.gw.UpdateUser(ctx, s.Token, updated)
}

// Deactivate clears the verified flag on the traveler's record. The
// session is dead afterwards regardless of what the caller does with it.
func (a *AuthUsecase) Deactivate(ctx context.Context, s *domain.Session) error {
	if s == nil {
		return domain.ErrSessionRequired
	}
	current, err := a.Profile(ctx, s)
	if err != nil {
		return err
	}
	deactivated := *current
	deactivated.Verified = false
	_, err = a.gw.UpdateUser(ctx, s.Token, deactivated)
	return err
}
