package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/metrics"
)

// CreateReport stores a citizen report. Its priority grows with the number of reports
// already filed at exactly the same location. Counting and inserting are not atomic.
func (s *Service) CreateReport(ctx context.Context, in entity.NewReport) (entity.Report, error) {
	problemType := strings.TrimSpace(in.ProblemType)
	description := strings.TrimSpace(in.Description)

	if problemType == "" || description == "" {
		return entity.Report{}, entity.NewValidationError("problemType and description are required")
	}

	department := strings.TrimSpace(in.Department)
	if department == "" {
		department = entity.DefaultDepartment
	}

	existing, err := s.reports.CountAtLocation(ctx, in.Location)
	if err != nil {
		return entity.Report{}, fmt.Errorf("count reports at location: %w", err)
	}

	now := s.now().UTC()

	timestamp := now
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		timestamp = in.Timestamp.UTC()
	}

	report := entity.Report{
		ID:          uuid.Must(uuid.NewV4()),
		ProblemType: problemType,
		Description: description,
		Department:  department,
		Location:    in.Location,
		ImageBase64: in.ImageBase64,
		Status:      entity.ReportStatusPending,
		Priority:    entity.PriorityForCount(existing + 1),
		Timestamp:   timestamp,
		UserID:      entity.SubmitterID(in.Submitter),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.reports.CreateReport(ctx, report)
	if err != nil {
		return entity.Report{}, fmt.Errorf("create report: %w", err)
	}

	metrics.ReportsCreated.WithLabelValues(string(report.Priority)).Inc()
	slog.InfoContext(ctx, "report created", "report_id", report.ID, "priority", report.Priority, "department", department)

	s.events.PublishReportEvent(ctx, entity.NewReportEvent(entity.ReportEventCreated, report))

	return report, nil
}

func (s *Service) Reports(ctx context.Context) ([]entity.Report, error) {
	return s.reports.Reports(ctx)
}

func (s *Service) AssignedReports(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	return s.reports.ReportsAssignedTo(ctx, userID)
}

func (s *Service) ReportStats(ctx context.Context) (entity.ReportStats, error) {
	return s.reports.Stats(ctx)
}

// AssignReport hands the report to the assignee and notifies them. The report update is kept
// even when the notification cannot be written; each call creates a new notification.
func (s *Service) AssignReport(ctx context.Context, reportID, assigneeID string) (entity.Report, error) {
	reportID = strings.TrimSpace(reportID)
	assigneeID = strings.TrimSpace(assigneeID)

	if reportID == "" || assigneeID == "" {
		return entity.Report{}, entity.NewValidationError("reportId and assignedTo are required")
	}

	rid, err := uuid.FromString(reportID)
	if err != nil {
		return entity.Report{}, entity.NewValidationError("Invalid reportId")
	}

	aid, err := uuid.FromString(assigneeID)
	if err != nil {
		return entity.Report{}, entity.NewValidationError("Invalid assignedTo")
	}

	report, err := s.reports.AssignReport(ctx, rid, aid)
	if err != nil {
		return entity.Report{}, err
	}

	now := s.now().UTC()

	err = s.CreateNotification(ctx, entity.Notification{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          aid,
		Message:         entity.AssignmentMessage(report),
		Type:            entity.NotificationTypeAssignment,
		RelatedReportID: &report.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return entity.Report{}, fmt.Errorf("notify assignee: %w", err)
	}

	slog.InfoContext(ctx, "report assigned", "report_id", report.ID, "assigned_to", aid)

	s.events.PublishReportEvent(ctx, entity.NewReportEvent(entity.ReportEventAssigned, report))

	return report, nil
}

// ResolveReport closes a report. The assignee may resolve it, as may any Staff or Higher Authority.
func (s *Service) ResolveReport(ctx context.Context, caller entity.User, reportID string) (entity.Report, error) {
	rid, err := uuid.FromString(strings.TrimSpace(reportID))
	if err != nil {
		return entity.Report{}, entity.NewValidationError("Invalid reportId")
	}

	report, err := s.reports.ReportByID(ctx, rid)
	if err != nil {
		return entity.Report{}, err
	}

	isAssignee := report.AssignedTo != nil && *report.AssignedTo == caller.ID
	if !isAssignee && !caller.Role.CanResolveAny() {
		return entity.Report{}, entity.ErrForbidden
	}

	if report.Status == entity.ReportStatusResolved {
		return report, nil
	}

	report, err = s.reports.SetStatus(ctx, rid, entity.ReportStatusResolved)
	if err != nil {
		return entity.Report{}, err
	}

	slog.InfoContext(ctx, "report resolved", "report_id", report.ID)

	s.events.PublishReportEvent(ctx, entity.NewReportEvent(entity.ReportEventResolved, report))

	return report, nil
}
