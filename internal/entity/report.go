package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	DefaultDepartment = "General"
	UnknownLocation   = "Unknown location"
	AnonymousUser     = "anonymous"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "Pending"
	ReportStatusInProgress ReportStatus = "In Progress"
	ReportStatusResolved   ReportStatus = "Resolved"
)

type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PriorityForCount maps the number of reports at a location, the new one included, to a priority.
func PriorityForCount(n int) Priority {
	switch {
	case n >= 3:
		return PriorityHigh
	case n == 2:
		return PriorityMedium
	default:
		return PriorityNormal
	}
}

type Location struct {
	Latitude  decimal.NullDecimal `json:"latitude"`
	Longitude decimal.NullDecimal `json:"longitude"`
	Text      *string             `json:"locationn,omitempty"`
}

func (l Location) Describe() string {
	if l.Text == nil || *l.Text == "" {
		return UnknownLocation
	}

	return *l.Text
}

type Report struct {
	ID          uuid.UUID    `json:"_id"`
	ProblemType string       `json:"problemType"`
	Description string       `json:"description"`
	Department  string       `json:"department"`
	Location    Location     `json:"location"`
	ImageBase64 *string      `json:"imageBase64,omitempty"`
	Status      ReportStatus `json:"status"`
	Priority    Priority     `json:"priority"`
	Timestamp   time.Time    `json:"timestamp"`
	UserID      *uuid.UUID   `json:"userId"`
	AssignedTo  *uuid.UUID   `json:"assignedTo"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type NewReport struct {
	ProblemType string
	Description string
	Department  string
	Location    Location
	ImageBase64 *string
	Timestamp   *time.Time
	Submitter   string
}

// SubmitterID resolves the raw submitter value of a report; anonymous or malformed values mean no submitter.
func SubmitterID(raw string) *uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == AnonymousUser {
		return nil
	}

	id, err := uuid.FromString(raw)
	if err != nil || id == uuid.Nil {
		return nil
	}

	return &id
}

type ReportSummary struct {
	ID          uuid.UUID    `json:"_id"`
	ProblemType string       `json:"problemType"`
	Location    Location     `json:"location"`
	Status      ReportStatus `json:"status"`
}

type ReportStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	InProgress  int `json:"inProgress"`
	Resolved    int `json:"resolved"`
	Departments int `json:"departments"`
}

func AssignmentMessage(r Report) string {
	return fmt.Sprintf(
		"You have been assigned a new report: %s at %s. Description: %s",
		r.ProblemType, r.Location.Describe(), r.Description,
	)
}
