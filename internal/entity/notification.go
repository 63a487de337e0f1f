package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type NotificationType string

const (
	NotificationTypeAssignment NotificationType = "assignment"
	NotificationTypeGeneral    NotificationType = "general"
	NotificationTypeAlert      NotificationType = "alert"
)

type Notification struct {
	ID              uuid.UUID        `json:"_id"`
	UserID          uuid.UUID        `json:"userId"`
	Message         string           `json:"message"`
	Type            NotificationType `json:"type"`
	IsRead          bool             `json:"isRead"`
	RelatedReportID *uuid.UUID       `json:"relatedReportId"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NotificationWithReport is a notification with the related report summary in place of its id.
type NotificationWithReport struct {
	Notification
	RelatedReport *ReportSummary `json:"relatedReportId"`
}
