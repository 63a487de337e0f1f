package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

const errInternalText = "Internal server error"

type ResponseError struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, msg, "error", err.Error(), "http_code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{
		Message: msg,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode error response",
			"error", err.Error(),
			"http_code", http.StatusInternalServerError)
	}
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err.Error())
	}
}

func sendMessage(ctx context.Context, w http.ResponseWriter, msg string) {
	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: msg})
}

// sendServiceErr maps a service error to its HTTP status and caller-facing message.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	code, msg := errStatus(err)
	sendErr(ctx, w, code, err, msg)
}

func errStatus(err error) (int, string) {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Message
	}

	switch {
	case errors.Is(err, entity.ErrOtpInvalid):
		return http.StatusBadRequest, "Invalid OTP"
	case errors.Is(err, entity.ErrOtpExpired):
		return http.StatusBadRequest, "OTP expired"
	case errors.Is(err, entity.ErrOtpPurposeInvalid):
		return http.StatusBadRequest, "Invalid OTP type"
	case errors.Is(err, entity.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, entity.ErrEmpIDTaken):
		return http.StatusBadRequest, "Employee ID already registered"
	case errors.Is(err, entity.ErrEmailNotRegistered):
		return http.StatusBadRequest, "Email not registered"
	case errors.Is(err, entity.ErrRoleInvalid):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, entity.ErrImageTooLarge):
		return http.StatusBadRequest, "Profile image must be 2MB or smaller"
	case errors.Is(err, entity.ErrImageUnsupported):
		return http.StatusBadRequest, "Only PNG, JPEG JPG allowed for profile image"
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, entity.ErrTokenInvalid), errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized, "Not authorized, token failed"
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, "Not allowed to change this report"
	case errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, entity.ErrReportNotFound):
		return http.StatusNotFound, "Report not found"
	case errors.Is(err, entity.ErrNotificationNotFound):
		return http.StatusNotFound, "Notification not found"
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, errInternalText
	}
}
