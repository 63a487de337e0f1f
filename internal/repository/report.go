package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

var reportColumns = []string{
	"id",
	"problem_type",
	"description",
	"department",
	"latitude",
	"longitude",
	"location_text",
	"image_base64",
	"status",
	"priority",
	"timestamp",
	"user_id",
	"assigned_to",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CreateReport(ctx context.Context, report entity.Report) error {
	sqlQuery, args, err := sq.Insert("reports").
		Columns(reportColumns...).
		Values(
			report.ID,
			report.ProblemType,
			report.Description,
			report.Department,
			report.Location.Latitude,
			report.Location.Longitude,
			report.Location.Text,
			report.ImageBase64,
			report.Status,
			report.Priority,
			report.Timestamp,
			report.UserID,
			report.AssignedTo,
			report.CreatedAt,
			report.UpdatedAt,
		).
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

// CountAtLocation counts reports whose latitude, longitude and location text all equal the given ones.
// Absent values only match absent values.
func (r *ReportRepository) CountAtLocation(ctx context.Context, loc entity.Location) (int, error) {
	sqlQuery, args, err := sq.Select("COUNT(*)").
		From("reports").
		Where(sq.Expr("latitude IS NOT DISTINCT FROM ?::numeric", loc.Latitude)).
		Where(sq.Expr("longitude IS NOT DISTINCT FROM ?::numeric", loc.Longitude)).
		Where(sq.Expr("location_text IS NOT DISTINCT FROM ?::text", loc.Text)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ReportRepository) Reports(ctx context.Context) ([]entity.Report, error) {
	return r.listReports(ctx, nil)
}

func (r *ReportRepository) ReportsAssignedTo(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	return r.listReports(ctx, sq.Eq{"assigned_to": userID})
}

func (r *ReportRepository) ReportByID(ctx context.Context, id uuid.UUID) (entity.Report, error) {
	sqlQuery, args, err := sq.Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Report{}, err
	}

	return scanOneReport(r.db.QueryRow(ctx, sqlQuery, args...))
}

// AssignReport links the report to the assignee and moves it to In Progress.
func (r *ReportRepository) AssignReport(ctx context.Context, id, assignee uuid.UUID) (entity.Report, error) {
	sqlQuery, args, err := sq.Update("reports").
		Set("assigned_to", assignee).
		Set("status", entity.ReportStatusInProgress).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Report{}, err
	}

	return scanOneReport(r.db.QueryRow(ctx, sqlQuery, args...))
}

func (r *ReportRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ReportStatus) (entity.Report, error) {
	sqlQuery, args, err := sq.Update("reports").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Report{}, err
	}

	return scanOneReport(r.db.QueryRow(ctx, sqlQuery, args...))
}

func (r *ReportRepository) Stats(ctx context.Context) (entity.ReportStats, error) {
	sqlQuery, args, err := sq.Select("COUNT(*)").
		Column(sq.Expr("COUNT(*) FILTER (WHERE status = ?)", entity.ReportStatusPending)).
		Column(sq.Expr("COUNT(*) FILTER (WHERE status = ?)", entity.ReportStatusInProgress)).
		Column(sq.Expr("COUNT(*) FILTER (WHERE status = ?)", entity.ReportStatusResolved)).
		Column("COUNT(DISTINCT department)").
		From("reports").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.ReportStats{}, err
	}

	var stats entity.ReportStats

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&stats.Total, &stats.Pending, &stats.InProgress, &stats.Resolved, &stats.Departments,
	)
	if err != nil {
		return entity.ReportStats{}, err
	}

	return stats, nil
}

func (r *ReportRepository) listReports(ctx context.Context, filter sq.Sqlizer) ([]entity.Report, error) {
	stmt := sq.Select(reportColumns...).From("reports").PlaceholderFormat(sq.Dollar)

	if filter != nil {
		stmt = stmt.Where(filter)
	}

	sqlQuery, args, err := stmt.OrderBy("timestamp DESC", "created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	reports := make([]entity.Report, 0)

	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func scanOneReport(row rowScanner) (entity.Report, error) {
	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Report{}, entity.ErrReportNotFound
		}

		return entity.Report{}, err
	}

	return report, nil
}

func scanReport(row rowScanner) (entity.Report, error) {
	var report entity.Report

	err := row.Scan(
		&report.ID,
		&report.ProblemType,
		&report.Description,
		&report.Department,
		&report.Location.Latitude,
		&report.Location.Longitude,
		&report.Location.Text,
		&report.ImageBase64,
		&report.Status,
		&report.Priority,
		&report.Timestamp,
		&report.UserID,
		&report.AssignedTo,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	return report, err
}
