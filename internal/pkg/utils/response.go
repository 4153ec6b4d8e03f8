package utils

import (
	"errors"
	"net/http"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/responses"
	"registration-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BuildErrorResponse writes the error envelope for err. Errors that are not a
// CustomError become a 500 with the generic client message. Dev details and
// call locations are only exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		customErr = exceptions.BuildNewCustomError(
			err,
			constvars.StatusInternalServerError,
			constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevSomethingWrongWithApplication,
		)
	}

	logError(log, customErr)

	response := exceptions.CustomError{
		StatusCode:    customErr.StatusCode,
		Success:       false,
		ClientMessage: customErr.ClientMessage,
	}
	if GetEnvString("APP_ENV", "development") != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	writeJSON(w, customErr.StatusCode, response)
}

// logError reports client mistakes at warn level and server faults at error level.
func logError(log *zap.Logger, customErr *exceptions.CustomError) {
	fields := []zap.Field{zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode)}
	if len(customErr.Locations) > 0 {
		location := customErr.Locations[0]
		fields = append(fields, zap.Any("location", map[string]interface{}{
			"file":          location.File,
			"line":          location.Line,
			"function_name": location.FunctionName,
		}))
	}

	if customErr.StatusCode >= constvars.StatusInternalServerError {
		log.Error(customErr.DevMessage, fields...)
		return
	}
	log.Warn(customErr.DevMessage, fields...)
}
