// ABOUTME: Field validation rules for login, signup, and incident forms
// ABOUTME: Mirrors the backend's schema so invalid input never hits the network

package validate

import (
	"fmt"
	"strings"

	"github.com/betherohq/hero-cli/internal/client"
)

// Field rule helpers usable directly as huh validators.

// Required returns a validator failing on empty input
func Required(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// MinChars returns a validator requiring at least n characters
func MinChars(n int, msg string) func(string) error {
	return func(s string) error {
		if len(s) < n {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// Email returns a validator requiring a plausible address. The backend does
// the real verification; this only rejects obviously malformed input the way
// the form schema does.
func Email(msg string) func(string) error {
	return func(s string) error {
		at := strings.Index(s, "@")
		if at < 1 || at == len(s)-1 {
			return fmt.Errorf("%s", msg)
		}
		domain := s[at+1:]
		if strings.Contains(domain, "@") || !strings.Contains(domain, ".") {
			return fmt.Errorf("%s", msg)
		}
		if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// Aggregate checks: each returns a field-name to message map, empty when the
// payload is submittable.

// Login validates credentials before a login request
func Login(creds client.Credentials) map[string]string {
	errs := map[string]string{}
	if err := Required("email is required")(creds.Email); err != nil {
		errs["email"] = err.Error()
	} else if err := Email("enter a valid email")(creds.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := MinChars(6, "password must be at least 6 characters")(creds.Password); err != nil {
		errs["password"] = err.Error()
	}
	return errs
}

// Incident validates a create/update payload
func Incident(input client.IncidentInput) map[string]string {
	errs := map[string]string{}
	if err := MinChars(3, "title must be at least 3 characters")(input.Title); err != nil {
		errs["title"] = err.Error()
	}
	if err := MinChars(15, "description must be at least 15 characters")(input.Description); err != nil {
		errs["description"] = err.Error()
	}
	if err := MinChars(3, "ong name must be at least 3 characters")(input.ONG); err != nil {
		errs["ong"] = err.Error()
	}
	if err := Email("enter a valid email")(input.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := MinChars(13, "whatsapp must be at least 13 characters")(input.Whatsapp); err != nil {
		errs["whatsapp"] = err.Error()
	}
	if err := MinChars(4, "enter a valid value")(input.Value); err != nil {
		errs["value"] = err.Error()
	}
	return errs
}

// User validates a user signup payload
func User(input client.UserInput) map[string]string {
	errs := map[string]string{}
	if err := MinChars(3, "name must be at least 3 characters")(input.Name); err != nil {
		errs["name"] = err.Error()
	}
	if err := Email("enter a valid email")(input.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := MinChars(6, "password must be at least 6 characters")(input.Password); err != nil {
		errs["password"] = err.Error()
	}
	if err := MinChars(13, "phone must be at least 13 characters")(input.Phone); err != nil {
		errs["phone"] = err.Error()
	}
	return errs
}

// ONG validates an ONG signup payload
func ONG(input client.ONGInput) map[string]string {
	errs := map[string]string{}
	if err := MinChars(3, "name must be at least 3 characters")(input.Name); err != nil {
		errs["name"] = err.Error()
	}
	if err := Email("enter a valid email")(input.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := MinChars(6, "password must be at least 6 characters")(input.Password); err != nil {
		errs["password"] = err.Error()
	}
	if err := MinChars(13, "phone must be at least 13 characters")(input.Phone); err != nil {
		errs["phone"] = err.Error()
	}
	if err := MinChars(4, "city must be at least 4 characters")(input.City); err != nil {
		errs["city"] = err.Error()
	}
	if err := MinChars(2, "state must be at least 2 characters")(input.UF); err != nil {
		errs["uf"] = err.Error()
	}
	return errs
}
