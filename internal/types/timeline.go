// Package types provides type definitions for structured data used throughout the alternate-futures system.
package types

import "github.com/go-playground/validator/v10"

const (
	// DefaultFutureCount is the number of future roles requested when the caller omits futureCount.
	DefaultFutureCount = 4
	// DefaultSpanYears is the projection window used when the caller omits spanYears.
	DefaultSpanYears = 20
)

// TimelineEntry is one discrete career event.
// Year is either "YYYY" or a range such as "2019-2023".
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// IsEmpty reports whether the entry carries no text besides its year.
func (e TimelineEntry) IsEmpty() bool {
	return e.Title == "" && e.Company == "" && e.Description == ""
}

// GenerateRequest is the body accepted by the generation endpoints.
type GenerateRequest struct {
	ResumeText  string `json:"resumeText" validate:"required"`
	FutureCount *int   `json:"futureCount,omitempty" validate:"omitempty,gte=0,lte=50"`
	SpanYears   *int   `json:"spanYears,omitempty" validate:"omitempty,gte=0,lte=200"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Count returns the requested future count, or the default when unset.
func (r *GenerateRequest) Count() int {
	if r.FutureCount == nil {
		return DefaultFutureCount
	}
	return *r.FutureCount
}

// Span returns the requested span in years, or the default when unset.
func (r *GenerateRequest) Span() int {
	if r.SpanYears == nil {
		return DefaultSpanYears
	}
	return *r.SpanYears
}

// GenerateResponse carries the raw completion text back to the caller.
type GenerateResponse struct {
	Content string `json:"content"`
}

// ErrorResponse is the body written for any non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TimelineResponse is returned by the parse-only endpoint.
type TimelineResponse struct {
	Timeline []TimelineEntry `json:"timeline"`
}

// FuturesResponse bundles the parsed resume timeline with the normalized projection.
type FuturesResponse struct {
	Timeline []TimelineEntry `json:"timeline"`
	Futures  []TimelineEntry `json:"futures"`
	Warnings []string        `json:"warnings,omitempty"`
}
