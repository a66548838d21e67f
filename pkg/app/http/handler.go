// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/internal/metrics"
	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
)

// maxBodySize caps request bodies read by DecodeJSON.
const maxBodySize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

type dataResponse struct {
	Data any `json:"data"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
//
// Usage with chi:
//
//	r.Post("/users/register", http.HandleError(logger, handler.register))
func HandleError(logger *zap.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, r, logger, err)
		}
	}
}

// DefaultErrorHandler writes err as a JSON error body.
// ServiceErrors expose their kind; anything else becomes a generic 500 and is logged.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var svcErr *apperrors.ServiceError

	if !apperrors.IsInternalError(err) && errors.As(err, &svcErr) {
		writeJSON(w, svcErr.StatusCode(), &errorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
		})
		return
	}

	metrics.ErrorsTotal.WithLabelValues("http", "unhandled").Inc()
	if logger != nil {
		logger.Error("Unhandled request error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	writeJSON(w, http.StatusInternalServerError, &errorResponse{
		ErrMsg:     apperrors.KindUnexpected,
		ErrMsgCode: http.StatusInternalServerError,
	})
}

// WriteData writes a `{"data": ...}` envelope with the given status.
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, &dataResponse{Data: data})
}

// WriteError writes a ServiceError-shaped body without going through a handler.
// Used by middleware that rejects requests before they reach a handler.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	DefaultErrorHandler(w, r, nil, err)
}

// Recoverer turns a handler panic into the standard 500 error body.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				metrics.ErrorsTotal.WithLabelValues("http", "panic").Inc()
				logger.Error("Recovered from handler panic",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				WriteError(w, r, errors.New("panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// DecodeJSON reads a size-limited JSON body into dst and validates it.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, apperrors.KindInvalidRequest)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, apperrors.KindInvalidRequest)
	}

	return Validate(dst)
}

// Validate runs struct tag validation and maps failures to an invalid_request error.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return apperrors.BadRequestError(err, apperrors.KindInvalidRequest)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
