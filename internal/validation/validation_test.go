package validation

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		raw    string
		status Status
		reason string
	}{
		{"", Empty, "Enter Email"},
		{"moshdev", Invalid, "Enter Valid Email"},
		{"mosh@dev", Invalid, "Enter Valid Email"},
		{"mosh dev@example.com", Invalid, "Enter Valid Email"},
		{"mosh@dev.lk", Valid, ""},
		{"mosh.dev+tag@sub.example.com", Valid, ""},
	}
	for _, tt := range tests {
		o := Email(tt.raw)
		if o.Status != tt.status || o.Reason != tt.reason {
			t.Errorf("Email(%q) = %+v, want status %v reason %q", tt.raw, o, tt.status, tt.reason)
		}
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		raw    string
		status Status
	}{
		{"", Empty},
		{"short1", Invalid},
		{"onlyletters", Invalid},
		{"1234567890", Invalid},
		{"Aa@asda22", Valid}, // symbols are fine as long as a letter and a digit appear
		{"abcdefg1", Valid},
	}
	for _, tt := range tests {
		if o := Password(tt.raw); o.Status != tt.status {
			t.Errorf("Password(%q) = %+v, want status %v", tt.raw, o, tt.status)
		}
	}
	if o := Password("short1"); o.Reason != "Invalid ex: Aa@asda22" {
		t.Errorf("Password reason = %q", o.Reason)
	}
}

func TestTelephone(t *testing.T) {
	tests := []struct {
		raw    string
		status Status
	}{
		{"", Empty},
		{"0765654332", Valid},
		{"076565433", Invalid},
		{"07656543321", Invalid},
		{"07656543ab", Invalid},
	}
	for _, tt := range tests {
		if o := Telephone(tt.raw); o.Status != tt.status {
			t.Errorf("Telephone(%q) = %+v, want status %v", tt.raw, o, tt.status)
		}
	}
}

func TestNIC(t *testing.T) {
	tests := []struct {
		raw    string
		status Status
	}{
		{"", Empty},
		{"200643231243", Valid},
		{"98123456v", Valid},
		{"9812345v", Invalid}, // v needs exactly eight digits before it
		{"981234567v", Invalid},
		{"abc123", Invalid},
	}
	for _, tt := range tests {
		if o := NIC(tt.raw); o.Status != tt.status {
			t.Errorf("NIC(%q) = %+v, want status %v", tt.raw, o, tt.status)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		raw    string
		status Status
	}{
		{"", Empty},
		{"Mosh Dev", Valid},
		{"moshdev", Valid},
		{"mosh2dev", Invalid},
		{"mosh-dev", Invalid},
	}
	for _, tt := range tests {
		if o := Name(tt.raw); o.Status != tt.status {
			t.Errorf("Name(%q) = %+v, want status %v", tt.raw, o, tt.status)
		}
	}
}

func TestCheckDispatch(t *testing.T) {
	if o := Check(FieldEmail, ""); o.Reason != "Enter Email" {
		t.Errorf("Check email reason = %q", o.Reason)
	}
	if o := Check(Field("unknown"), "x"); o.OK() {
		t.Error("Check on unknown field must not be Valid")
	}
}
