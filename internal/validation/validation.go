// Package validation classifies raw form input. It is pure: no I/O, no
// state, one Outcome per call. Rendering errors next to the offending
// field is the presentation layer's job.
package validation

import (
	"regexp"
	"unicode"
)

// Status tags an Outcome. Empty and Invalid are distinct so the caller
// can word the prompt differently.
type Status int

const (
	Valid Status = iota
	Invalid
	Empty
)

// Outcome is the result of validating a single field.
type Outcome struct {
	Status Status
	Reason string
}

func (o Outcome) OK() bool { return o.Status == Valid }

func valid() Outcome { return Outcome{Status: Valid} }

func invalid(reason string) Outcome { return Outcome{Status: Invalid, Reason: reason} }

func empty(reason string) Outcome { return Outcome{Status: Empty, Reason: reason} }

// Field names a validatable input kind.
type Field string

const (
	FieldEmail     Field = "email"
	FieldPassword  Field = "password"
	FieldTelephone Field = "telephone"
	FieldNIC       Field = "nic"
	FieldName      Field = "name"
)

var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	telRe   = regexp.MustCompile(`^\d{10}$`)
	nicRe   = regexp.MustCompile(`^(?:\d{8}v|\d+)$`)
	nameRe  = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// Check dispatches on the field kind. Unknown fields are rejected.
func Check(field Field, raw string) Outcome {
	switch field {
	case FieldEmail:
		return Email(raw)
	case FieldPassword:
		return Password(raw)
	case FieldTelephone:
		return Telephone(raw)
	case FieldNIC:
		return NIC(raw)
	case FieldName:
		return Name(raw)
	default:
		return invalid("Unknown Field")
	}
}

func Email(raw string) Outcome {
	if raw == "" {
		return empty("Enter Email")
	}
	if !emailRe.MatchString(raw) {
		return invalid("Enter Valid Email")
	}
	return valid()
}

// Password requires at least one letter, at least one digit and a
// length of eight or more.
func Password(raw string) Outcome {
	if raw == "" {
		return empty("Enter Password")
	}
	var letter, digit bool
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if len([]rune(raw)) < 8 || !letter || !digit {
		return invalid("Invalid ex: Aa@asda22")
	}
	return valid()
}

func Telephone(raw string) Outcome {
	if raw == "" {
		return empty("Enter Telephone")
	}
	if !telRe.MatchString(raw) {
		return invalid("Invalid ex: 0765654332")
	}
	return valid()
}

// NIC accepts either the old format, eight digits followed by a literal
// v, or the new all-digit format.
func NIC(raw string) Outcome {
	if raw == "" {
		return empty("Enter NIC")
	}
	if !nicRe.MatchString(raw) {
		return invalid("Invalid ex: 200643231243")
	}
	return valid()
}

func Name(raw string) Outcome {
	if raw == "" {
		return empty("Enter Name")
	}
	if !nameRe.MatchString(raw) {
		return invalid("Invalid ex: moshdev")
	}
	return valid()
}
