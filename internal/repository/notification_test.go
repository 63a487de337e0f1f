package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/repository"
)

type NotificationRepositoryTestSuite struct {
	suite.Suite
	repo    *repository.NotificationRepository
	reports *repository.ReportRepository
}

func (ts *NotificationRepositoryTestSuite) SetupTest() {
	db := repository.SetupTestDatabase(ts.T())
	ts.repo = repository.NewNotificationRepository(db)
	ts.reports = repository.NewReportRepository(db)
}

func TestNotificationRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(NotificationRepositoryTestSuite))
}

func newNotification(userID uuid.UUID, reportID *uuid.UUID, createdAt time.Time) entity.Notification {
	return entity.Notification{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          userID,
		Message:         "assigned",
		Type:            entity.NotificationTypeAssignment,
		RelatedReportID: reportID,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func (ts *NotificationRepositoryTestSuite) TestListWithReports() {
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	now := time.Now()

	report := newReport(coords("1", "1"), now)
	ts.Require().NoError(ts.reports.CreateReport(ctx, report))

	older := newNotification(owner, &report.ID, now.Add(-time.Minute))
	newer := newNotification(owner, nil, now)
	foreign := newNotification(uuid.Must(uuid.NewV4()), nil, now)

	ts.Require().NoError(ts.repo.CreateNotification(ctx, older))
	ts.Require().NoError(ts.repo.CreateNotification(ctx, newer))
	ts.Require().NoError(ts.repo.CreateNotification(ctx, foreign))

	list, err := ts.repo.NotificationsWithReports(ctx, owner)
	ts.Require().NoError(err)
	ts.Require().Len(list, 2)
	ts.Equal(newer.ID, list[0].ID)
	ts.Nil(list[0].RelatedReport)
	ts.Require().NotNil(list[1].RelatedReport)
	ts.Equal(report.ID, list[1].RelatedReport.ID)
	ts.Equal("Pothole", list[1].RelatedReport.ProblemType)
	ts.Equal(entity.ReportStatusPending, list[1].RelatedReport.Status)
}

func (ts *NotificationRepositoryTestSuite) TestOwnershipIsEnforced() {
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())

	n := newNotification(owner, nil, time.Now())
	ts.Require().NoError(ts.repo.CreateNotification(ctx, n))

	_, err := ts.repo.MarkRead(ctx, n.ID, stranger)
	ts.ErrorIs(err, entity.ErrNotificationNotFound)

	err = ts.repo.DeleteNotification(ctx, n.ID, stranger)
	ts.ErrorIs(err, entity.ErrNotificationNotFound)

	updated, err := ts.repo.MarkAllRead(ctx, stranger)
	ts.Require().NoError(err)
	ts.Zero(updated)

	count, err := ts.repo.CountUnread(ctx, owner)
	ts.Require().NoError(err)
	ts.EqualValues(1, count)
}

func (ts *NotificationRepositoryTestSuite) TestMarkAndDelete() {
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	first := newNotification(owner, nil, time.Now())
	second := newNotification(owner, nil, time.Now())
	ts.Require().NoError(ts.repo.CreateNotification(ctx, first))
	ts.Require().NoError(ts.repo.CreateNotification(ctx, second))

	read, err := ts.repo.MarkRead(ctx, first.ID, owner)
	ts.Require().NoError(err)
	ts.True(read.IsRead)

	count, err := ts.repo.CountUnread(ctx, owner)
	ts.Require().NoError(err)
	ts.EqualValues(1, count)

	updated, err := ts.repo.MarkAllRead(ctx, owner)
	ts.Require().NoError(err)
	ts.EqualValues(1, updated)

	ts.Require().NoError(ts.repo.DeleteNotification(ctx, first.ID, owner))
	ts.ErrorIs(ts.repo.DeleteNotification(ctx, first.ID, owner), entity.ErrNotificationNotFound)
}
