package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/streamportal/pkg/availability"
	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/manager"
	"github.com/kasuboski/streamportal/pkg/tmdb"
)

const (
	codeValidation     = "VALIDATION_ERROR"
	codeAuthentication = "AUTHENTICATION_ERROR"
	codeNotFound       = "NOT_FOUND_ERROR"
	codeExternalAPI    = "EXTERNAL_API_ERROR"
	codeRateLimit      = "RATE_LIMIT_ERROR"
	codeInternal       = "INTERNAL_ERROR"

	catalogAPIName = "TMDB API"

	// retryAfterSeconds is advertised to clients that ran out of requests
	retryAfterSeconds = 60
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	StatusCode int            `json:"status_code"`
	Details    map[string]any `json:"details"`
}

// resourceError ties a catalog failure to the title that was requested
type resourceError struct {
	ref availability.ContentRef
	err error
}

func (e *resourceError) Error() string {
	return e.err.Error()
}

func (e *resourceError) Unwrap() error {
	return e.err
}

func withResource(err error, ref availability.ContentRef) error {
	return &resourceError{ref: ref, err: err}
}

var errRateLimited = errors.New("too many requests")

// errorBody maps an error to the envelope sent to clients
func errorBody(err error) ErrorBody {
	var (
		validation *manager.ValidationError
		upstream   *tmdb.UpstreamError
		resource   *resourceError
	)

	switch {
	case errors.As(err, &validation):
		return ErrorBody{
			Code:       codeValidation,
			Message:    validation.Message,
			StatusCode: http.StatusBadRequest,
			Details:    map[string]any{"field": validation.Field},
		}
	case errors.Is(err, tmdb.ErrInvalidID):
		return ErrorBody{
			Code:       codeValidation,
			Message:    "Content ID is out of range",
			StatusCode: http.StatusBadRequest,
			Details:    map[string]any{"field": "content_id"},
		}
	case errors.Is(err, errRateLimited):
		return ErrorBody{
			Code:       codeRateLimit,
			Message:    "Too many requests. Please try again later.",
			StatusCode: http.StatusTooManyRequests,
			Details:    map[string]any{"retry_after": retryAfterSeconds},
		}
	case errors.Is(err, tmdb.ErrUnauthorized):
		return ErrorBody{
			Code:       codeAuthentication,
			Message:    "Invalid TMDB API key",
			StatusCode: http.StatusUnauthorized,
			Details:    map[string]any{},
		}
	case errors.Is(err, tmdb.ErrNotFound):
		body := ErrorBody{
			Code:       codeNotFound,
			Message:    "Content not found",
			StatusCode: http.StatusNotFound,
			Details:    map[string]any{"resource_type": nil, "resource_id": nil},
		}
		if errors.As(err, &resource) {
			body.Message = fmt.Sprintf("%s with ID %d not found", resource.ref.Kind, resource.ref.ID)
			body.Details["resource_type"] = string(resource.ref.Kind)
			body.Details["resource_id"] = resource.ref.ID
		}
		return body
	case errors.As(err, &upstream):
		status := upstream.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return ErrorBody{
			Code:       codeExternalAPI,
			Message:    upstream.Error(),
			StatusCode: status,
			Details:    map[string]any{"api_name": catalogAPIName},
		}
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorBody{
			Code:       codeExternalAPI,
			Message:    "Catalog request timed out",
			StatusCode: http.StatusGatewayTimeout,
			Details:    map[string]any{"api_name": catalogAPIName},
		}
	default:
		return ErrorBody{
			Code:       codeInternal,
			Message:    "An unexpected error occurred",
			StatusCode: http.StatusInternalServerError,
			Details:    map[string]any{},
		}
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody(err)

	log := logger.FromCtx(r.Context(), "code", body.Code, "status_code", body.StatusCode)
	if body.StatusCode >= http.StatusInternalServerError {
		log.Errorw("request failed", "error", err)
	} else {
		log.Warnw("request rejected", "error", err)
	}

	if body.StatusCode == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}
	writeResponse(w, body.StatusCode, ErrorResponse{Error: body})
}
