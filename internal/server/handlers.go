package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/alternate-futures/internal/futures"
	"github.com/jonathan/alternate-futures/internal/timeline"
	"github.com/jonathan/alternate-futures/internal/types"
)

// maxBodyBytes bounds request bodies; resumes are plain text.
const maxBodyBytes = 1 << 20

// jsonFieldNames maps GenerateRequest struct fields to their wire names.
var jsonFieldNames = map[string]string{
	"ResumeText":  "resumeText",
	"FutureCount": "futureCount",
	"SpanYears":   "spanYears",
}

// upperBounds mirrors the lte constraints on GenerateRequest.
var upperBounds = map[string]int{
	"futureCount": 50,
	"spanYears":   200,
}

// decodeGenerateRequest reads and validates a GenerateRequest body.
// Anything wrong with resumeText, including an unreadable body, reports
// "resumeText is required".
func decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (types.GenerateRequest, error) {
	var req types.GenerateRequest

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && (typeErr.Field == "futureCount" || typeErr.Field == "spanYears") {
			return req, &ErrValidation{Field: typeErr.Field, Message: typeErr.Field + " must be an integer"}
		}
		return req, &ErrValidation{Field: "resumeText", Message: msgResumeTextRequired}
	}

	if err := req.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return req, &ErrValidation{Field: "body", Message: err.Error()}
		}
		field := jsonFieldNames[fieldErrs[0].StructField()]
		if field == "resumeText" {
			return req, &ErrValidation{Field: field, Message: msgResumeTextRequired}
		}
		return req, &ErrValidation{
			Field:   field,
			Message: fmt.Sprintf("%s must be between 0 and %d", field, upperBounds[field]),
		}
	}
	return req, nil
}

// parseAnchor reads the optional anchor query parameter.
func parseAnchor(r *http.Request) (futures.Anchor, error) {
	anchor, err := futures.ParseAnchor(r.URL.Query().Get("anchor"))
	if err != nil {
		return "", &ErrValidation{Field: "anchor", Message: err.Error()}
	}
	return anchor, nil
}

// handleGenerate returns the raw completion text for a resume
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}

	content, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		log.Printf("[api/generate] error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, msgUpstreamFailed)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{Content: content})
}

// handleTimeline parses the resume without calling the completion service
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.TimelineResponse{Timeline: timeline.Parse(req.ResumeText)})
}

// handleFutures generates and normalizes a projection server-side
func (s *Server) handleFutures(w http.ResponseWriter, r *http.Request) {
	anchor, err := parseAnchor(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}
	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}

	resp, err := s.generator.Futures(r.Context(), req, anchor)
	if err != nil {
		log.Printf("[api/futures] error: %v", err)
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleFuturesStream sends the parsed timeline immediately, then the
// normalized projection once the completion service answers
func (s *Server) handleFuturesStream(w http.ResponseWriter, r *http.Request) {
	anchor, err := parseAnchor(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}
	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := sse.WriteEvent(eventTimeline, types.TimelineResponse{Timeline: timeline.Parse(req.ResumeText)}); err != nil {
		log.Printf("[api/futures/stream] client went away: %v", err)
		return
	}

	resp, err := s.generator.Futures(r.Context(), req, anchor)
	if err != nil {
		log.Printf("[api/futures/stream] error: %v", err)
		sse.WriteError(publicMessage(err))
		return
	}

	if err := sse.WriteEvent(eventFutures, resp); err != nil {
		log.Printf("[api/futures/stream] client went away: %v", err)
	}
}
