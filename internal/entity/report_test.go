package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

func TestPriorityForCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  entity.Priority
	}{
		{1, entity.PriorityNormal},
		{2, entity.PriorityMedium},
		{3, entity.PriorityHigh},
		{10, entity.PriorityHigh},
		{0, entity.PriorityNormal},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, entity.PriorityForCount(tt.count), "count %d", tt.count)
	}
}

func TestSubmitterID(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())

	require.Nil(t, entity.SubmitterID(""))
	require.Nil(t, entity.SubmitterID("anonymous"))
	require.Nil(t, entity.SubmitterID("not-an-id"))
	require.Nil(t, entity.SubmitterID(uuid.Nil.String()))

	got := entity.SubmitterID(" " + id.String() + " ")
	require.NotNil(t, got)
	require.Equal(t, id, *got)
}

func TestLocation_Describe(t *testing.T) {
	t.Parallel()

	text := "Main Road"
	empty := ""

	require.Equal(t, "Main Road", entity.Location{Text: &text}.Describe())
	require.Equal(t, entity.UnknownLocation, entity.Location{Text: &empty}.Describe())
	require.Equal(t, entity.UnknownLocation, entity.Location{}.Describe())
}

func TestLocation_JSON(t *testing.T) {
	t.Parallel()

	var loc entity.Location

	err := json.Unmarshal([]byte(`{"latitude":23.34,"longitude":"85.30","locationn":"Ranchi"}`), &loc)
	require.NoError(t, err)
	require.True(t, loc.Latitude.Valid)
	require.True(t, loc.Latitude.Decimal.Equal(decimal.RequireFromString("23.34")))
	require.True(t, loc.Longitude.Decimal.Equal(decimal.RequireFromString("85.3")))
	require.Equal(t, "Ranchi", *loc.Text)

	b, err := json.Marshal(entity.Location{})
	require.NoError(t, err)
	require.JSONEq(t, `{"latitude":null,"longitude":null}`, string(b))

	b, err = json.Marshal(loc)
	require.NoError(t, err)
	require.JSONEq(t, `{"latitude":23.34,"longitude":85.3,"locationn":"Ranchi"}`, string(b))
}

func TestAssignmentMessage(t *testing.T) {
	t.Parallel()

	text := "Sector 4"

	msg := entity.AssignmentMessage(entity.Report{
		ProblemType: "Pothole",
		Description: "Deep hole",
		Location:    entity.Location{Text: &text},
	})
	require.Equal(t, "You have been assigned a new report: Pothole at Sector 4. Description: Deep hole", msg)

	msg = entity.AssignmentMessage(entity.Report{ProblemType: "Garbage", Description: "Overflowing"})
	require.Equal(t, "You have been assigned a new report: Garbage at Unknown location. Description: Overflowing", msg)
}

func TestNotificationWithReport_JSON(t *testing.T) {
	t.Parallel()

	reportID := uuid.Must(uuid.NewV4())

	n := entity.NotificationWithReport{
		Notification: entity.Notification{
			ID:              uuid.Must(uuid.NewV4()),
			Type:            entity.NotificationTypeAssignment,
			RelatedReportID: &reportID,
		},
		RelatedReport: &entity.ReportSummary{
			ID:          reportID,
			ProblemType: "Streetlight",
			Status:      entity.ReportStatusInProgress,
		},
	}

	b, err := json.Marshal(n)
	require.NoError(t, err)

	var out map[string]any

	require.NoError(t, json.Unmarshal(b, &out))

	related, ok := out["relatedReportId"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Streetlight", related["problemType"])
	require.Equal(t, "In Progress", related["status"])
}
