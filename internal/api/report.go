package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

type CreateReportRequest struct {
	ProblemType string          `json:"problemType"`
	Description string          `json:"description"`
	Department  string          `json:"department"`
	Location    entity.Location `json:"location"`
	ImageBase64 *string         `json:"imageBase64"`
	Timestamp   *time.Time      `json:"timestamp"`
	// UserID is kept raw: anything other than a JSON string means no submitter.
	UserID json.RawMessage `json:"userId" swaggertype:"string"`
}

type AssignReportRequest struct {
	ReportID   string `json:"reportId" validate:"required"`
	AssignedTo string `json:"assignedTo" validate:"required"`
}

type AssignReportResponse struct {
	Message string        `json:"message"`
	Report  entity.Report `json:"report"`
}

// @Summary Submit report
// @Description Priority is computed from the number of reports already filed at the same location.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} entity.Report
// @Failure 400 {object} ResponseError
// @Router /api/reports [post]
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest

	if !h.decode(w, r, &req, "problemType and description are required") {
		return
	}

	in := entity.NewReport{
		ProblemType: req.ProblemType,
		Description: req.Description,
		Department:  req.Department,
		Location:    req.Location,
		ImageBase64: req.ImageBase64,
		Timestamp:   req.Timestamp,
	}

	in.Submitter = submitterText(req.UserID)

	report, err := h.s.CreateReport(r.Context(), in)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusCreated, report)
}

func submitterText(raw json.RawMessage) string {
	var s string

	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}

	return s
}

// @Summary List reports
// @Description All reports, newest first.
// @Tags reports
// @Produce json
// @Success 200 {array} entity.Report
// @Failure 500 {object} ResponseError
// @Router /api/reports [get]
func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.s.Reports(r.Context())
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, reports)
}

// @Summary Report statistics
// @Tags reports
// @Produce json
// @Success 200 {object} entity.ReportStats
// @Failure 500 {object} ResponseError
// @Router /api/reports/stats [get]
func (h *Handler) ReportStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.s.ReportStats(r.Context())
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, stats)
}

// @Summary Assign report
// @Description Sets the assignee, moves the report to In Progress and notifies the assignee.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body AssignReportRequest true "Report and assignee"
// @Success 200 {object} AssignReportResponse
// @Failure 400 {object} ResponseError
// @Failure 404 {object} ResponseError
// @Router /api/reports/assign [put]
func (h *Handler) AssignReport(w http.ResponseWriter, r *http.Request) {
	var req AssignReportRequest

	if !h.decode(w, r, &req, "reportId and assignedTo are required") {
		return
	}

	report, err := h.s.AssignReport(r.Context(), req.ReportID, req.AssignedTo)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, AssignReportResponse{
		Message: "Report assigned successfully",
		Report:  report,
	})
}

// @Summary Reports assigned to me
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Report
// @Failure 401 {object} ResponseError
// @Router /api/reports/assigned [get]
func (h *Handler) AssignedReports(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	reports, err := h.s.AssignedReports(r.Context(), caller.ID)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, reports)
}

// @Summary Resolve report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} entity.Report
// @Failure 400 {object} ResponseError
// @Failure 403 {object} ResponseError
// @Failure 404 {object} ResponseError
// @Router /api/reports/{id}/resolve [put]
func (h *Handler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	report, err := h.s.ResolveReport(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, report)
}
