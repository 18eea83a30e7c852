// Package validation holds the employer form rule set. The same rules back
// the interactive form and the API; the request handler only enforces the
// required-field and email-shape subset as its trust boundary, the rest
// exists so both layers agree on one definition.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxLogoSize caps uploaded logo images at 2 MiB.
	MaxLogoSize = 2 * 1024 * 1024
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AllowedLogoTypes are the accepted logo MIME types.
var AllowedLogoTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// RequiredFields are the fields the server rejects the request without.
var RequiredFields = []string{"company", "name", "email", "title", "description"}

// Field checks one named form field against its rule and returns a
// human-readable error when the value is rejected. Values are trimmed before
// length checks, matching the form behaviour.
func Field(name, value string) error {
	trimmed := strings.TrimSpace(value)

	switch name {
	case "company":
		if trimmed == "" {
			return errors.New("Company name is required")
		}
		if len(trimmed) < 2 {
			return errors.New("Company name must be at least 2 characters")
		}
		if len(trimmed) > 100 {
			return errors.New("Company name must be less than 100 characters")
		}
	case "name":
		if trimmed == "" {
			return errors.New("Contact name is required")
		}
		if len(trimmed) < 2 {
			return errors.New("Name must be at least 2 characters")
		}
		if len(trimmed) > 100 {
			return errors.New("Name must be less than 100 characters")
		}
	case "email":
		if trimmed == "" {
			return errors.New("Email is required")
		}
		if !emailPattern.MatchString(value) {
			return errors.New("Please enter a valid email address")
		}
	case "phone":
		if value != "" && len(value) < 8 {
			return errors.New("Please enter a valid phone number")
		}
		if len(value) > 20 {
			return errors.New("Phone number is too long")
		}
	case "title":
		if trimmed == "" {
			return errors.New("Job title is required")
		}
		if len(trimmed) < 3 {
			return errors.New("Job title must be at least 3 characters")
		}
		if len(trimmed) > 150 {
			return errors.New("Job title must be less than 150 characters")
		}
	case "description":
		if trimmed == "" {
			return errors.New("Job description is required")
		}
		if len(trimmed) < 50 {
			return errors.New("Description must be at least 50 characters")
		}
		if len(trimmed) > 5000 {
			return errors.New("Description must be less than 5000 characters")
		}
	case "baseSalaryMin", "baseSalaryMax":
		if value == "" {
			return nil
		}
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.New("Please enter a valid hourly rate")
		}
		if rate < 0 {
			return errors.New("Salary cannot be negative")
		}
		if rate > 999 {
			return errors.New("Please enter a valid hourly rate")
		}
	case "externalUrl":
		if value != "" && !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return errors.New("URL must start with http:// or https://")
		}
	}

	return nil
}

// SalaryRange cross-checks the two salary bounds. The interactive form
// attaches the error to the max field; the request handler deliberately does
// not re-run this check, mirroring the form-only enforcement of the rule.
func SalaryRange(minValue, maxValue string) error {
	if minValue == "" || maxValue == "" {
		return nil
	}
	min, errMin := strconv.ParseFloat(minValue, 64)
	max, errMax := strconv.ParseFloat(maxValue, 64)
	if errMin != nil || errMax != nil {
		return nil
	}
	if min > max {
		return errors.New("Maximum salary must be greater than minimum")
	}
	return nil
}

// Logo validates an uploaded logo's declared content type and byte size.
func Logo(contentType string, size int64) error {
	allowed := false
	for _, t := range AllowedLogoTypes {
		if strings.EqualFold(strings.TrimSpace(contentType), t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("Invalid file type. Allowed types: %s", strings.Join(AllowedLogoTypes, ", "))
	}
	if size > MaxLogoSize {
		return fmt.Errorf("File size must be less than %dMB", MaxLogoSize/1024/1024)
	}
	return nil
}

// Required reports whether all server-enforced required fields are present,
// after trimming.
func Required(field func(name string) string) bool {
	for _, name := range RequiredFields {
		if strings.TrimSpace(field(name)) == "" {
			return false
		}
	}
	return true
}

// Email reports whether the value has the basic local@domain.tld shape.
func Email(value string) bool {
	return emailPattern.MatchString(value)
}
