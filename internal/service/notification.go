package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/metrics"
)

func (s *Service) CreateNotification(ctx context.Context, n entity.Notification) error {
	err := s.notifications.CreateNotification(ctx, n)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	s.invalidateUnread(ctx, n.UserID)

	return nil
}

func (s *Service) Notifications(ctx context.Context, userID uuid.UUID) ([]entity.NotificationWithReport, error) {
	return s.notifications.NotificationsWithReports(ctx, userID)
}

// MarkNotificationRead only touches notifications owned by userID.
func (s *Service) MarkNotificationRead(ctx context.Context, userID uuid.UUID, id string) (entity.Notification, error) {
	nid, err := uuid.FromString(id)
	if err != nil {
		return entity.Notification{}, entity.ErrNotificationNotFound
	}

	n, err := s.notifications.MarkRead(ctx, nid, userID)
	if err != nil {
		return entity.Notification{}, err
	}

	s.invalidateUnread(ctx, userID)

	return n, nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	updated, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}

	if updated > 0 {
		s.invalidateUnread(ctx, userID)
	}

	return nil
}

// DeleteNotification only deletes notifications owned by userID.
func (s *Service) DeleteNotification(ctx context.Context, userID uuid.UUID, id string) error {
	nid, err := uuid.FromString(id)
	if err != nil {
		return entity.ErrNotificationNotFound
	}

	err = s.notifications.DeleteNotification(ctx, nid, userID)
	if err != nil {
		return err
	}

	s.invalidateUnread(ctx, userID)

	return nil
}

// UnreadCount serves the counter from cache when possible. Cache failures fall back to the database.
// A counted value is written back only if no invalidation happened since the lookup.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, generation, ok, cacheErr := s.unread.Get(ctx, userID)

	switch {
	case cacheErr != nil:
		metrics.UnreadCacheLookups.WithLabelValues("error").Inc()
		slog.WarnContext(ctx, "unread cache get failed", "error", cacheErr)
	case ok:
		metrics.UnreadCacheLookups.WithLabelValues("hit").Inc()
		return count, nil
	default:
		metrics.UnreadCacheLookups.WithLabelValues("miss").Inc()
	}

	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	if cacheErr != nil {
		return count, nil
	}

	stored, err := s.unread.SetIfGeneration(ctx, userID, generation, count)
	if err != nil {
		slog.WarnContext(ctx, "unread cache set failed", "error", err)
	} else if !stored {
		slog.DebugContext(ctx, "unread count changed while counting, cache left empty")
	}

	return count, nil
}

func (s *Service) invalidateUnread(ctx context.Context, userID uuid.UUID) {
	err := s.unread.Invalidate(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "unread cache invalidate failed", "user", userID, "error", err)
	}
}
