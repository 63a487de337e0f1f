package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ReportEventType string

const (
	ReportEventCreated  ReportEventType = "report.created"
	ReportEventAssigned ReportEventType = "report.assigned"
	ReportEventResolved ReportEventType = "report.resolved"
)

type ReportEvent struct {
	Type       ReportEventType `json:"type"`
	ReportID   uuid.UUID       `json:"reportId"`
	Department string          `json:"department"`
	Priority   Priority        `json:"priority"`
	Status     ReportStatus    `json:"status"`
	AssignedTo *uuid.UUID      `json:"assignedTo,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

func NewReportEvent(t ReportEventType, r Report) ReportEvent {
	return ReportEvent{
		Type:       t,
		ReportID:   r.ID,
		Department: r.Department,
		Priority:   r.Priority,
		Status:     r.Status,
		AssignedTo: r.AssignedTo,
		OccurredAt: time.Now().UTC(),
	}
}
