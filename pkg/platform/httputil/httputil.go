// Package httputil writes JSON responses and maps domain errors to HTTP
// status codes.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	dErrors "panel/pkg/domain-errors"
	"panel/pkg/platform/sentinel"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
	Code        string `json:"code,omitempty"`
}

// WriteJSON encodes body with status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps err to a status and error body. Internal failures never
// leak their message; display errors are shown verbatim.
func WriteError(w http.ResponseWriter, err error) {
	status, body := translate(err)
	WriteJSON(w, status, body)
}

func translate(err error) (int, ErrorResponse) {
	if display, ok := dErrors.AsDisplay(err); ok {
		return http.StatusBadGateway, ErrorResponse{Error: "daemon_error", Description: display.Message, Code: display.Code}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, ErrorResponse{Error: "timeout", Description: "request timed out"}
	}

	var de *dErrors.Error
	if !errors.As(err, &de) {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return http.StatusNotFound, ErrorResponse{Error: "not_found", Description: "resource not found"}
		case errors.Is(err, sentinel.ErrConflict):
			return http.StatusConflict, ErrorResponse{Error: "conflict", Description: "resource conflict"}
		default:
			return http.StatusInternalServerError, ErrorResponse{Error: "internal_error"}
		}
	}

	switch de.Code {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest, ErrorResponse{Error: "bad_request", Description: de.Message}
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Description: de.Message}
	case dErrors.CodeNotFound:
		return http.StatusNotFound, ErrorResponse{Error: "not_found", Description: de.Message}
	case dErrors.CodeConflict:
		return http.StatusConflict, ErrorResponse{Error: "conflict", Description: de.Message}
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Description: de.Message}
	case dErrors.CodeForbidden:
		return http.StatusForbidden, ErrorResponse{Error: "forbidden", Description: de.Message}
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout, ErrorResponse{Error: "timeout", Description: de.Message}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal_error"}
	}
}

// DecodeJSON reads a single JSON object from r into dst, rejecting unknown
// fields and oversized bodies.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("invalid request body: %v", err))
	}
	if dec.More() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body: trailing data")
	}
	return nil
}
