package api

import (
	"net/http"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

type EmailRequest struct {
	Email string `json:"email" validate:"required"`
}

type SendOtpRequest struct {
	Email string `json:"email" validate:"required"`
	Type  string `json:"type"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required"`
	Otp   string `json:"otp" validate:"required"`
}

type CompleteSignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
	Contact    string `json:"contact" validate:"required"`
	EmpID      string `json:"empId" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Otp        string `json:"otp" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	Otp         string `json:"otp" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// @Summary Start signup
// @Description Sends an email verification OTP to an unregistered address.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	h.requestOtp(w, r, entity.OtpPurposeSignup)
}

// @Summary Forgot password
// @Description Sends a password reset OTP to a registered address.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/auth/forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.requestOtp(w, r, entity.OtpPurposeReset)
}

func (h *Handler) requestOtp(w http.ResponseWriter, r *http.Request, purpose entity.OtpPurpose) {
	var req EmailRequest

	if !h.decode(w, r, &req, "Email is required") {
		return
	}

	err := h.s.RequestOtp(r.Context(), req.Email, purpose)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendMessage(r.Context(), w, "OTP sent successfully")
}

// @Summary Send OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SendOtpRequest true "Email and OTP type (signup or reset)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/auth/send-otp [post]
func (h *Handler) SendOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SendOtpRequest

	if !h.decode(w, r, &req, "Email is required") {
		return
	}

	purpose, err := entity.ParseOtpPurpose(req.Type)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	err = h.s.RequestOtp(ctx, req.Email, purpose)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendMessage(ctx, w, "OTP sent successfully")
}

// @Summary Verify OTP
// @Description Checks a code without consuming it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyOtpRequest true "Email and OTP"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError
// @Router /api/auth/verify-otp [post]
func (h *Handler) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	var req VerifyOtpRequest

	if !h.decode(w, r, &req, "Email and OTP are required") {
		return
	}

	err := h.s.VerifyOtp(r.Context(), req.Email, req.Otp)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendMessage(r.Context(), w, "OTP verified successfully")
}

// @Summary Complete signup
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CompleteSignupRequest true "Profile and OTP"
// @Success 201 {object} entity.Session
// @Failure 400 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/auth/complete-signup [post]
func (h *Handler) CompleteSignup(w http.ResponseWriter, r *http.Request) {
	var req CompleteSignupRequest

	if !h.decode(w, r, &req, "All fields are required") {
		return
	}

	session, err := h.s.CompleteSignup(r.Context(), entity.SignupForm{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		Contact:    req.Contact,
		EmpID:      req.EmpID,
		Address:    req.Address,
		Otp:        req.Otp,
	})
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusCreated, session)
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} entity.Session
// @Failure 401 {object} ResponseError
// @Router /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if !h.decode(w, r, &req, "Invalid email or password") {
		return
	}

	session, err := h.s.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, session)
}

// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email, OTP and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError
// @Router /api/auth/reset-password [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ResetPasswordRequest

	if !h.decode(w, r, &req, "Email, OTP, and new password are required") {
		return
	}

	err := h.s.ResetPassword(ctx, req.Email, req.Otp, req.NewPassword)
	if err != nil {
		code, msg := errStatus(err)
		if code == http.StatusNotFound {
			code = http.StatusBadRequest
		}

		sendErr(ctx, w, code, err, msg)

		return
	}

	sendMessage(ctx, w, "Password reset successful")
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.User
// @Failure 401 {object} ResponseError
// @Failure 404 {object} ResponseError
// @Router /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	user, err := h.s.CurrentUser(r.Context(), caller.ID)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, user)
}
