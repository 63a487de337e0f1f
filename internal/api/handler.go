package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

type Service interface {
	TokenValidator

	RequestOtp(ctx context.Context, email string, purpose entity.OtpPurpose) error
	VerifyOtp(ctx context.Context, email, code string) error
	CompleteSignup(ctx context.Context, form entity.SignupForm) (entity.Session, error)
	Login(ctx context.Context, email, password string) (entity.Session, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (entity.User, error)

	CreateReport(ctx context.Context, in entity.NewReport) (entity.Report, error)
	Reports(ctx context.Context) ([]entity.Report, error)
	AssignedReports(ctx context.Context, userID uuid.UUID) ([]entity.Report, error)
	ReportStats(ctx context.Context) (entity.ReportStats, error)
	AssignReport(ctx context.Context, reportID, assigneeID string) (entity.Report, error)
	ResolveReport(ctx context.Context, caller entity.User, reportID string) (entity.Report, error)

	Notifications(ctx context.Context, userID uuid.UUID) ([]entity.NotificationWithReport, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkNotificationRead(ctx context.Context, userID uuid.UUID, id string) (entity.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, userID uuid.UUID, id string) error

	JuniorStaff(ctx context.Context, caller entity.User) ([]entity.StaffMember, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd entity.ProfileUpdate, image *entity.ProfileImage) (entity.User, error)
}

type Handler struct {
	s            Service
	validate     *validator.Validate
	maxImageSize int64
}

func NewHandler(s Service, maxImageSize int64) *Handler {
	return &Handler{
		s:            s,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxImageSize: maxImageSize,
	}
}

// @Summary Health check
// @Tags system
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK\n"))
}

// decode reads a JSON body into dst and checks its validate tags; missingMsg is returned to the caller on a failed check.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, missingMsg string) bool {
	ctx := r.Context()

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return false
	}

	err = h.validate.Struct(dst)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, missingMsg)
		return false
	}

	return true
}

func callerFromContext(w http.ResponseWriter, r *http.Request) (entity.User, bool) {
	user, err := entity.UserFromContext(r.Context())
	if err != nil {
		code, msg := errStatus(err)
		sendErr(r.Context(), w, code, err, msg)

		return entity.User{}, false
	}

	return user, true
}
