package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/logger"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/metrics"
)

const (
	maxCodeValue     = 1000000
	passwordHashCost = 10
)

const otpEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>%s</h2>
  <p>Your OTP is: <strong>%s</strong></p>
  <p>This OTP will expire in %d minutes.</p>
  <p>If you didn't request this, please ignore this email.</p>
</div>`

func (s *Service) GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(maxCodeValue))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}

	return fmt.Sprintf("%06d", n.Int64())
}

func (s *Service) HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}

	return string(hash), nil
}

// RequestOtp replaces any code issued for the email with a new one and mails it.
// A signup code requires an unregistered email, a reset code a registered one.
func (s *Service) RequestOtp(ctx context.Context, email string, purpose entity.OtpPurpose) error {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return entity.NewValidationError("Email is required")
	}

	_, err := s.users.UserByEmail(ctx, email)

	switch purpose {
	case entity.OtpPurposeSignup:
		if err == nil {
			return entity.ErrEmailTaken
		}
	case entity.OtpPurposeReset:
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.ErrEmailNotRegistered
		}
	default:
		return entity.ErrOtpPurposeInvalid
	}

	if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		return fmt.Errorf("find user: %w", err)
	}

	err = s.otps.DeleteByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("delete previous otp: %w", err)
	}

	code := s.GenerateCode()

	codeHash, err := s.HashSecret(code)
	if err != nil {
		return err
	}

	now := s.now()

	err = s.otps.SaveOtp(ctx, entity.Otp{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     email,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(s.cfg.OTP.CodeTTL),
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("save otp: %w", err)
	}

	slog.DebugContext(ctx, "otp issued", "email", email, "purpose", purpose, "code", code)

	body := fmt.Sprintf(otpEmailTemplate, purpose.Heading(), code, int(s.cfg.OTP.CodeTTL.Minutes()))

	err = s.mailer.SendMessage(purpose.Subject(), body, []string{email}, "text/html")
	if err != nil {
		metrics.OtpSent.WithLabelValues(string(purpose), "failed").Inc()
		return fmt.Errorf("send otp email: %w", err)
	}

	metrics.OtpSent.WithLabelValues(string(purpose), "sent").Inc()
	slog.InfoContext(ctx, "otp sent", "email", email, "purpose", purpose)

	return nil
}

// VerifyOtp checks the code without consuming it.
func (s *Service) VerifyOtp(ctx context.Context, email, code string) error {
	email = entity.NormalizeEmail(email)
	code = strings.TrimSpace(code)

	if email == "" || code == "" {
		return entity.NewValidationError("Email and OTP are required")
	}

	_, err := s.checkOtp(ctx, email, code)

	return err
}

// checkOtp finds the live code for the email. A wrong code is reported before expiry;
// an expired matching code is deleted.
func (s *Service) checkOtp(ctx context.Context, email, code string) (entity.Otp, error) {
	otp, err := s.otps.OtpByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Otp{}, entity.ErrOtpInvalid
		}

		return entity.Otp{}, fmt.Errorf("find otp: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code))
	if err != nil {
		return entity.Otp{}, entity.ErrOtpInvalid
	}

	err = otp.Validate(s.now())
	if err != nil {
		delErr := s.otps.DeleteOtp(ctx, otp.ID)
		if delErr != nil {
			return entity.Otp{}, fmt.Errorf("delete expired otp: %w", delErr)
		}

		return entity.Otp{}, err
	}

	return otp, nil
}

func (s *Service) CompleteSignup(ctx context.Context, form entity.SignupForm) (entity.Session, error) {
	form.Role = strings.TrimSpace(form.Role)
	form.Email = entity.NormalizeEmail(form.Email)
	form.Otp = strings.TrimSpace(form.Otp)

	role, roleErr := entity.ParseRole(form.Role)

	required := []string{form.Name, form.Email, form.Password, form.Role, form.Contact, form.EmpID, form.Address, form.Otp}
	if roleErr == nil && role.RequiresDepartment() {
		required = append(required, form.Department)
	}

	if !allPresent(required...) {
		return entity.Session{}, entity.NewValidationError("All fields are required")
	}

	if roleErr != nil {
		return entity.Session{}, entity.NewValidationError("Invalid role")
	}

	otp, err := s.checkOtp(ctx, form.Email, form.Otp)
	if err != nil {
		return entity.Session{}, err
	}

	err = s.ensureUnique(ctx, form.Email, form.EmpID)
	if err != nil {
		return entity.Session{}, err
	}

	passwordHash, err := s.HashSecret(form.Password)
	if err != nil {
		return entity.Session{}, err
	}

	now := s.now().UTC()

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         strings.TrimSpace(form.Name),
		Email:        form.Email,
		PasswordHash: passwordHash,
		Role:         role,
		Contact:      strings.TrimSpace(form.Contact),
		EmpID:        strings.TrimSpace(form.EmpID),
		Address:      strings.TrimSpace(form.Address),
		JoiningDate:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if dept := strings.TrimSpace(form.Department); dept != "" {
		user.Department = &dept
	}

	err = s.users.CreateUser(ctx, user)
	if err != nil {
		return entity.Session{}, fmt.Errorf("create user: %w", err)
	}

	err = s.otps.DeleteOtp(ctx, otp.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete consumed otp", "email", form.Email, "error", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return entity.Session{}, err
	}

	ctx = logger.SetUserID(ctx, user.ID.String())
	slog.InfoContext(ctx, "user registered", "role", user.Role)

	return entity.Session{User: user, Token: token, RedirectURL: "/"}, nil
}

func (s *Service) ensureUnique(ctx context.Context, email, empID string) error {
	_, err := s.users.UserByEmail(ctx, email)
	if err == nil {
		return entity.ErrEmailTaken
	}

	if !errors.Is(err, entity.ErrUserNotFound) {
		return fmt.Errorf("find user by email: %w", err)
	}

	_, err = s.users.UserByEmpID(ctx, strings.TrimSpace(empID))
	if err == nil {
		return entity.ErrEmpIDTaken
	}

	if !errors.Is(err, entity.ErrUserNotFound) {
		return fmt.Errorf("find user by employee id: %w", err)
	}

	return nil
}

// Login reports the same error for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (entity.Session, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return entity.Session{}, entity.ErrInvalidCredentials
	}

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.Session{}, entity.ErrInvalidCredentials
		}

		return entity.Session{}, fmt.Errorf("find user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return entity.Session{}, entity.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return entity.Session{}, err
	}

	return entity.Session{User: user, Token: token, RedirectURL: user.Role.DashboardURL()}, nil
}

func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = entity.NormalizeEmail(email)
	code = strings.TrimSpace(code)

	if !allPresent(email, code, newPassword) {
		return entity.NewValidationError("Email, OTP, and new password are required")
	}

	otp, err := s.checkOtp(ctx, email, code)
	if err != nil {
		return err
	}

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		return err
	}

	passwordHash, err := s.HashSecret(newPassword)
	if err != nil {
		return err
	}

	err = s.users.UpdatePassword(ctx, user.ID, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	err = s.otps.DeleteOtp(ctx, otp.ID)
	if err != nil {
		return fmt.Errorf("delete otp: %w", err)
	}

	slog.InfoContext(logger.SetUserID(ctx, user.ID.String()), "password reset")

	return nil
}

func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (entity.User, error) {
	return s.users.UserByID(ctx, userID)
}

// DeleteStaleOtps purges codes that expired longer than the retention window ago.
func (s *Service) DeleteStaleOtps(ctx context.Context) error {
	deleted, err := s.otps.DeleteExpiredBefore(ctx, s.now().Add(-s.cfg.OTP.Retention))
	if err != nil {
		return fmt.Errorf("delete stale otps: %w", err)
	}

	slog.DebugContext(ctx, "stale otps deleted", "count", deleted)

	return nil
}

func allPresent(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}

	return true
}
