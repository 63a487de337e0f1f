package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

var notificationColumns = []string{
	"id",
	"user_id",
	"message",
	"type",
	"is_read",
	"related_report_id",
	"created_at",
	"updated_at",
}

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n entity.Notification) error {
	sqlQuery, args, err := sq.Insert("notifications").
		Columns(notificationColumns...).
		Values(n.ID, n.UserID, n.Message, n.Type, n.IsRead, n.RelatedReportID, n.CreatedAt, n.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	return nil
}

// NotificationsWithReports lists the user's notifications, newest first, with the related report summary.
func (r *NotificationRepository) NotificationsWithReports(
	ctx context.Context,
	userID uuid.UUID,
) ([]entity.NotificationWithReport, error) {
	sqlQuery, args, err := sq.Select(
		"n.id", "n.user_id", "n.message", "n.type", "n.is_read", "n.related_report_id", "n.created_at", "n.updated_at",
		"r.id", "r.problem_type", "r.latitude", "r.longitude", "r.location_text", "r.status",
	).
		From("notifications n").
		LeftJoin("reports r ON r.id = n.related_report_id").
		Where(sq.Eq{"n.user_id": userID}).
		OrderBy("n.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	notifications := make([]entity.NotificationWithReport, 0)

	for rows.Next() {
		var (
			n           entity.NotificationWithReport
			reportID    *uuid.UUID
			problemType *string
			latitude    decimal.NullDecimal
			longitude   decimal.NullDecimal
			text        *string
			status      *entity.ReportStatus
		)

		err = rows.Scan(
			&n.ID, &n.UserID, &n.Message, &n.Type, &n.IsRead, &n.RelatedReportID, &n.CreatedAt, &n.UpdatedAt,
			&reportID, &problemType, &latitude, &longitude, &text, &status,
		)
		if err != nil {
			return nil, err
		}

		if reportID != nil {
			summary := entity.ReportSummary{
				ID:       *reportID,
				Location: entity.Location{Latitude: latitude, Longitude: longitude, Text: text},
			}

			if problemType != nil {
				summary.ProblemType = *problemType
			}

			if status != nil {
				summary.Status = *status
			}

			n.RelatedReport = &summary
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (entity.Notification, error) {
	sqlQuery, args, err := sq.Update("notifications").
		Set("is_read", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, user_id, message, type, is_read, related_report_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Notification{}, err
	}

	var n entity.Notification

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&n.ID, &n.UserID, &n.Message, &n.Type, &n.IsRead, &n.RelatedReportID, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Notification{}, entity.ErrNotificationNotFound
		}

		return entity.Notification{}, err
	}

	return n, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := `UPDATE notifications SET is_read = TRUE, updated_at = NOW() WHERE user_id = $1 AND is_read = FALSE`

	result, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *NotificationRepository) DeleteNotification(ctx context.Context, id, userID uuid.UUID) error {
	q := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotificationNotFound
	}

	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

	var count int64

	err := r.db.QueryRow(ctx, q, userID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
