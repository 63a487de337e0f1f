package service

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -source=service.go -destination=../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/config"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user entity.User) error
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	UserByEmpID(ctx context.Context, empID string) (entity.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateProfile(ctx context.Context, user entity.User) (entity.User, error)
	StaffByRoleAndDepartment(ctx context.Context, role entity.Role, department string) ([]entity.StaffMember, error)
}

type OtpRepository interface {
	SaveOtp(ctx context.Context, otp entity.Otp) error
	OtpByEmail(ctx context.Context, email string) (entity.Otp, error)
	DeleteOtp(ctx context.Context, id uuid.UUID) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, report entity.Report) error
	CountAtLocation(ctx context.Context, loc entity.Location) (int, error)
	Reports(ctx context.Context) ([]entity.Report, error)
	ReportsAssignedTo(ctx context.Context, userID uuid.UUID) ([]entity.Report, error)
	ReportByID(ctx context.Context, id uuid.UUID) (entity.Report, error)
	AssignReport(ctx context.Context, id, assignee uuid.UUID) (entity.Report, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ReportStatus) (entity.Report, error)
	Stats(ctx context.Context) (entity.ReportStats, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n entity.Notification) error
	NotificationsWithReports(ctx context.Context, userID uuid.UUID) ([]entity.NotificationWithReport, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (entity.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, id, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

// UnreadCache stores unread counters under a per-user generation that Invalidate advances.
type UnreadCache interface {
	Get(ctx context.Context, userID uuid.UUID) (count, generation int64, ok bool, err error)
	SetIfGeneration(ctx context.Context, userID uuid.UUID, generation, count int64) (bool, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}

type EventPublisher interface {
	PublishReportEvent(ctx context.Context, event entity.ReportEvent)
}

type ImageStore interface {
	SaveProfileImage(ctx context.Context, userID uuid.UUID, data []byte) (string, error)
	Remove(ctx context.Context, publicURL string) error
}

type Service struct {
	cfg           config.Config
	users         UserRepository
	otps          OtpRepository
	reports       ReportRepository
	notifications NotificationRepository
	unread        UnreadCache
	mailer        Mailer
	events        EventPublisher
	images        ImageStore
	now           func() time.Time
}

func New(
	cfg config.Config,
	users UserRepository,
	otps OtpRepository,
	reports ReportRepository,
	notifications NotificationRepository,
	unread UnreadCache,
	mailer Mailer,
	events EventPublisher,
	images ImageStore,
) *Service {
	return &Service{
		cfg:           cfg,
		users:         users,
		otps:          otps,
		reports:       reports,
		notifications: notifications,
		unread:        unread,
		mailer:        mailer,
		events:        events,
		images:        images,
		now:           time.Now,
	}
}
