package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 500
	maxURLLen         = 2048
)

// validateURLField checks that raw is an absolute http(s) URL.
func validateURLField(raw string) error {
	if len(raw) > maxURLLen {
		return fmt.Errorf("url exceeds maximum length of %d characters", maxURLLen)
	}

	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("invalid url format: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got: %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("url must have a host")
	}

	return nil
}

// Validate checks a create request, accumulating all field issues.
func (in CreateInput) Validate() error {
	var fields []FieldError

	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title is required"})
	} else if len(in.Title) > maxTitleLen {
		fields = append(fields, FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)})
	}

	if in.URL == "" {
		fields = append(fields, FieldError{Field: "url", Message: "url is required"})
	} else if err := validateURLField(in.URL); err != nil {
		fields = append(fields, FieldError{Field: "url", Message: err.Error()})
	}

	if len(in.Description) > maxDescriptionLen {
		fields = append(fields, FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks a partial update. Absent fields are not validated.
func (in UpdateInput) Validate() error {
	var fields []FieldError

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			fields = append(fields, FieldError{Field: "title", Message: "title must not be empty"})
		} else if len(*in.Title) > maxTitleLen {
			fields = append(fields, FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)})
		}
	}

	if in.URL != nil {
		if err := validateURLField(*in.URL); err != nil {
			fields = append(fields, FieldError{Field: "url", Message: err.Error()})
		}
	}

	if in.Description != nil && len(*in.Description) > maxDescriptionLen {
		fields = append(fields, FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
