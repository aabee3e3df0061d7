// internal/app/features/errors/json.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Response is the JSON body of every error answer.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Ref     string `json:"ref"`
}

// JSON writes an error answer with a fresh reference ID. The ID is logged
// with err so a user-reported ref can be found in the logs. Server errors
// log at Error level, client errors at Info.
func JSON(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, message string, err error) {
	ref := uuid.NewString()

	if log != nil {
		fields := []zap.Field{
			zap.String("ref", ref),
			zap.Int("status", status),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		if status >= http.StatusInternalServerError {
			log.Error(message, fields...)
		} else {
			log.Info(message, fields...)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Status: status, Message: message, Ref: ref})
}

// NotFound answers 404 for an unknown resource.
func NotFound(w http.ResponseWriter, r *http.Request, log *zap.Logger, what string) {
	JSON(w, r, log, http.StatusNotFound, what+" not found", nil)
}

// BadRequest answers 400.
func BadRequest(w http.ResponseWriter, r *http.Request, log *zap.Logger, message string) {
	JSON(w, r, log, http.StatusBadRequest, message, nil)
}

// Internal answers 500 and logs err.
func Internal(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	JSON(w, r, log, http.StatusInternalServerError, "internal error", err)
}

// WriteJSON encodes v with status 200.
func WriteJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
