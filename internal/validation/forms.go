package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Report collects per-field outcomes for a whole form. Every declared
// field is evaluated so each one can surface its own error; there is no
// short-circuit.
type Report map[Field]Outcome

// OK reports whether every field came back Valid.
func (r Report) OK() bool {
	for _, o := range r {
		if !o.OK() {
			return false
		}
	}
	return true
}

// Error turns a failed Report into the taxonomy's ValidationError. It is
// non-fatal and user-correctable; the workflow halts until corrected.
type Error struct {
	Fields Report
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, o := range e.Fields {
		if !o.OK() {
			parts = append(parts, fmt.Sprintf("%s: %s", f, o.Reason))
		}
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

// SignInForm gates authentication.
type SignInForm struct {
	Email    string
	Password string
}

func (f SignInForm) Validate() Report {
	return Report{
		FieldEmail:    Email(f.Email),
		FieldPassword: Password(f.Password),
	}
}

// SignUpForm gates registration. Beyond the per-field rules the email
// must not equal the password.
type SignUpForm struct {
	Phone    string
	Email    string
	Name     string
	NIC      string
	Password string
}

func (f SignUpForm) Validate() Report {
	rep := Report{
		FieldTelephone: Telephone(f.Phone),
		FieldEmail:     Email(f.Email),
		FieldName:      Name(f.Name),
		FieldNIC:       NIC(f.NIC),
		FieldPassword:  Password(f.Password),
	}
	if f.Email != "" && f.Email == f.Password {
		rep[FieldEmail] = invalid("Email Shouldn't be password")
	}
	return rep
}

// ProfileForm gates profile updates; email is fixed server-side and not
// part of it.
type ProfileForm struct {
	Name  string
	Phone string
	NIC   string
}

func (f ProfileForm) Validate() Report {
	return Report{
		FieldName:      Name(f.Name),
		FieldTelephone: Telephone(f.Phone),
		FieldNIC:       NIC(f.NIC),
	}
}
