package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single entry in the errors list returned on 400.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldLabels maps struct field names to user-facing labels.
var fieldLabels = map[string]string{
	"Username":      "Username",
	"Password":      "Password",
	"FullName":      "Full name",
	"Email":         "Email",
	"Role":          "Role",
	"Position":      "Position",
	"Title":         "Job title",
	"Description":   "Description",
	"Location":      "Location",
	"Salary":        "Salary",
	"Requirements":  "Requirements",
	"Status":        "Status",
	"Stage":         "Stage",
	"Phone":         "Phone number",
	"Skills":        "Skills",
	"Education":     "Education",
	"Experience":    "Experience",
	"Notes":         "Notes",
	"ResumeURL":     "Resume URL",
	"JobID":         "Job",
	"UserID":        "User",
	"ApplicationID": "Application",
	"RecruiterID":   "Recruiter",
	"CoverLetter":   "Cover letter",
	"ScheduledAt":   "Scheduled time",
	"Duration":      "Duration",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Translate converts validator errors into a field-level error list suitable
// for the API response. Non-validator errors produce a single generic entry.
func Translate(err error) []FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	l := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", l)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", l)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", l, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", l, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", l, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", l, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", l, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", l, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", l)
	default:
		return fmt.Sprintf("%s is invalid", l)
	}
}
