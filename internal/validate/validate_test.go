// ABOUTME: Tests for the field validation rules
// ABOUTME: Verifies per-field helpers and the aggregate payload checks

package validate

import (
	"testing"

	"github.com/betherohq/hero-cli/internal/client"
)

func TestRequired(t *testing.T) {
	v := Required("field is required")

	if err := v(""); err == nil {
		t.Error("expected error for empty input")
	}
	if err := v("   "); err == nil {
		t.Error("expected error for whitespace input")
	}
	if err := v("value"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMinChars(t *testing.T) {
	v := MinChars(3, "too short")

	if err := v("ab"); err == nil {
		t.Error("expected error for 2 characters")
	}
	if err := v("abc"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@@example.com", false},
		{"user@nodot", false},
		{"user@.com", false},
		{"user@example.", false},
	}

	v := Email("invalid email")
	for _, tt := range tests {
		err := v(tt.input)
		if tt.valid && err != nil {
			t.Errorf("Email(%q) expected valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("Email(%q) expected error, got nil", tt.input)
		}
	}
}

func TestLogin(t *testing.T) {
	// Empty credentials fail locally; no request should ever be made with
	// them.
	errs := Login(client.Credentials{})
	if len(errs) != 2 {
		t.Errorf("expected 2 errors for empty credentials, got %d: %v", len(errs), errs)
	}

	errs = Login(client.Credentials{Email: "user@example.com", Password: "short"})
	if _, ok := errs["password"]; !ok {
		t.Error("expected password error for 5 characters")
	}
	if _, ok := errs["email"]; ok {
		t.Error("did not expect email error")
	}

	errs = Login(client.Credentials{Email: "user@example.com", Password: "secret1"})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestIncident(t *testing.T) {
	valid := client.IncidentInput{
		Title:       "Injured puppy",
		Description: "Puppy hit by a car, needs surgery",
		ONG:         "APAD",
		Email:       "contact@apad.org",
		Whatsapp:    "5511912345678",
		Value:       "120.00",
	}

	if errs := Incident(valid); len(errs) != 0 {
		t.Errorf("expected no errors for valid payload, got %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*client.IncidentInput)
		field  string
	}{
		{"short title", func(i *client.IncidentInput) { i.Title = "ab" }, "title"},
		{"short description", func(i *client.IncidentInput) { i.Description = "too short" }, "description"},
		{"short ong", func(i *client.IncidentInput) { i.ONG = "ab" }, "ong"},
		{"bad email", func(i *client.IncidentInput) { i.Email = "not-an-email" }, "email"},
		{"short whatsapp", func(i *client.IncidentInput) { i.Whatsapp = "123456" }, "whatsapp"},
		{"short value", func(i *client.IncidentInput) { i.Value = "1.0" }, "value"},
	}

	for _, tt := range tests {
		input := valid
		tt.mutate(&input)
		errs := Incident(input)
		if len(errs) != 1 {
			t.Errorf("%s: expected 1 error, got %d: %v", tt.name, len(errs), errs)
			continue
		}
		if _, ok := errs[tt.field]; !ok {
			t.Errorf("%s: expected error on field %s, got %v", tt.name, tt.field, errs)
		}
	}
}

func TestUser(t *testing.T) {
	valid := client.UserInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret1",
		Phone:    "5511912345678",
	}

	if errs := User(valid); len(errs) != 0 {
		t.Errorf("expected no errors for valid payload, got %v", errs)
	}

	invalid := valid
	invalid.Password = "12345"
	errs := User(invalid)
	if _, ok := errs["password"]; !ok {
		t.Errorf("expected password error, got %v", errs)
	}
}

func TestONG(t *testing.T) {
	valid := client.ONGInput{
		Name:     "APAD",
		Email:    "contact@apad.org",
		Password: "secret1",
		Phone:    "5511912345678",
		City:     "Rio do Sul",
		UF:       "SC",
	}

	if errs := ONG(valid); len(errs) != 0 {
		t.Errorf("expected no errors for valid payload, got %v", errs)
	}

	invalid := valid
	invalid.City = "Rio"
	invalid.UF = "S"
	errs := ONG(invalid)
	if _, ok := errs["city"]; !ok {
		t.Errorf("expected city error, got %v", errs)
	}
	if _, ok := errs["uf"]; !ok {
		t.Errorf("expected uf error, got %v", errs)
	}
}
