package validation

import (
	"strings"
	"testing"
)

func TestSignInFormValidate(t *testing.T) {
	rep := SignInForm{Email: "mosh@dev.lk", Password: "abcdefg1"}.Validate()
	if !rep.OK() {
		t.Fatalf("valid sign-in rejected: %+v", rep)
	}

	rep = SignInForm{}.Validate()
	if rep.OK() {
		t.Fatal("empty sign-in accepted")
	}
	if rep[FieldEmail].Status != Empty || rep[FieldPassword].Status != Empty {
		t.Fatalf("empty form must report both fields Empty: %+v", rep)
	}
}

func TestSignUpFormValidate(t *testing.T) {
	good := SignUpForm{
		Phone:    "0765654332",
		Email:    "mosh@dev.lk",
		Name:     "Mosh Dev",
		NIC:      "200643231243",
		Password: "abcdefg1",
	}
	if rep := good.Validate(); !rep.OK() {
		t.Fatalf("valid sign-up rejected: %+v", rep)
	}

	// every bad field reports its own outcome, no short-circuit
	bad := SignUpForm{Phone: "123", Email: "nope", Name: "x9", NIC: "x", Password: "short"}
	rep := bad.Validate()
	for _, f := range []Field{FieldTelephone, FieldEmail, FieldName, FieldNIC, FieldPassword} {
		if rep[f].Status != Invalid {
			t.Errorf("field %s = %+v, want Invalid", f, rep[f])
		}
	}
}

func TestSignUpEmailEqualsPassword(t *testing.T) {
	form := SignUpForm{
		Phone:    "0765654332",
		Email:    "a1b2c3d4@x.lk",
		Name:     "Mosh",
		NIC:      "200643231243",
		Password: "a1b2c3d4@x.lk",
	}
	rep := form.Validate()
	if rep.OK() {
		t.Fatal("email equal to password accepted")
	}
	if got := rep[FieldEmail].Reason; got != "Email Shouldn't be password" {
		t.Fatalf("email reason = %q", got)
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Fields: SignInForm{}.Validate()}
	msg := err.Error()
	if !strings.Contains(msg, "Enter Email") || !strings.Contains(msg, "Enter Password") {
		t.Fatalf("error message missing field reasons: %q", msg)
	}
}
