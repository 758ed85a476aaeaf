package httputil

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/hanoi/pkg/errors"
)

// ErrorBody is the JSON body of an error response.
type ErrorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// StatusFor returns the HTTP status for err based on its error code.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDiskCount, errors.ErrCodeInvalidRod:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidTranscript, errors.ErrCodeEmptySource, errors.ErrCodeIllegalPlacement:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Body builds the error body for err. Internal errors get a generic message
// so that server details do not leak to clients.
func Body(err error) ErrorBody {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		return ErrorBody{Code: errors.ErrCodeInternal, Message: "internal server error"}
	}
	return ErrorBody{Code: errors.GetCode(err), Message: message(err)}
}

// message appends the cause when it carries its own code, so a rejected
// transcript says which move was illegal.
func message(err error) string {
	msg := errors.UserMessage(err)
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil && errors.GetCode(e.Cause) != "" {
		msg += ": " + message(e.Cause)
	}
	return msg
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes the error body for err with the status from [StatusFor].
func WriteError(w http.ResponseWriter, err error) error {
	return WriteJSON(w, StatusFor(err), Body(err))
}
