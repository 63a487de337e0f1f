package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/api"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/mocks"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/service"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/config"
)

const testImageLimit = 1024

type testAPI struct {
	router        http.Handler
	svc           *service.Service
	users         *mocks.MockUserRepository
	otps          *mocks.MockOtpRepository
	reports       *mocks.MockReportRepository
	notifications *mocks.MockNotificationRepository
	unread        *mocks.MockUnreadCache
	mailer        *mocks.MockMailer
	events        *mocks.MockEventPublisher
	images        *mocks.MockImageStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	ta := &testAPI{
		users:         mocks.NewMockUserRepository(ctrl),
		otps:          mocks.NewMockOtpRepository(ctrl),
		reports:       mocks.NewMockReportRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
		unread:        mocks.NewMockUnreadCache(ctrl),
		mailer:        mocks.NewMockMailer(ctrl),
		events:        mocks.NewMockEventPublisher(ctrl),
		images:        mocks.NewMockImageStore(ctrl),
	}

	cfg := config.Config{
		JWT: config.JWTConfig{Secret: "api-test-secret", TokenExpiry: time.Hour},
		OTP: config.OTPConfig{CodeTTL: 5 * time.Minute},
	}

	ta.svc = service.New(cfg, ta.users, ta.otps, ta.reports, ta.notifications, ta.unread, ta.mailer, ta.events, ta.images)
	ta.router = api.NewRouter(api.NewHandler(ta.svc, testImageLimit), api.NewMiddleware(ta.svc), api.RouterConfig{
		CorsOrigins: []string{"*"},
		UploadsDir:  t.TempDir(),
		UploadsPath: "/uploads/profile-images",
	})

	return ta
}

// login makes the user resolvable from a bearer token and returns the Authorization header value.
func (ta *testAPI) login(t *testing.T, user entity.User) string {
	t.Helper()

	token, err := ta.svc.IssueToken(user.ID)
	require.NoError(t, err)

	ta.users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil).AnyTimes()

	return "Bearer " + token
}

func (ta *testAPI) do(t *testing.T, method, target, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp api.ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp.Message
}

func staffUser(role entity.Role) entity.User {
	dept := "Roads"

	return entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Meera",
		Email:        "meera@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         role,
		Department:   &dept,
	}
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	ta := newTestAPI(t)

	rec := ta.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ta.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestAuthRoutes_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		body    any
		code    int
		message string
	}{
		{"signup without email", "/api/auth/signup", map[string]string{}, http.StatusBadRequest, "Email is required"},
		{"verify without otp", "/api/auth/verify-otp", map[string]string{"email": "a@b.co"}, http.StatusBadRequest, "Email and OTP are required"},
		{"otp alias without otp", "/api/otp/verify-otp", map[string]string{"email": "a@b.co"}, http.StatusBadRequest, "Email and OTP are required"},
		{"send otp with unknown type", "/api/auth/send-otp", map[string]string{"email": "a@b.co", "type": "login"}, http.StatusBadRequest, "Invalid OTP type"},
		{"complete signup missing fields", "/api/auth/complete-signup", map[string]string{"email": "a@b.co"}, http.StatusBadRequest, "All fields are required"},
		{"reset without password", "/api/auth/reset-password", map[string]string{"email": "a@b.co", "otp": "123456"}, http.StatusBadRequest, "Email, OTP, and new password are required"},
		{"login without credentials", "/api/auth/login", map[string]string{}, http.StatusUnauthorized, "Invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := newTestAPI(t)

			rec := ta.do(t, http.MethodPost, tt.target, "", tt.body)
			require.Equal(t, tt.code, rec.Code)
			require.Equal(t, tt.message, messageOf(t, rec))
		})
	}
}

func TestLogin_UniformFailure(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	user := staffUser(entity.RoleStaff)
	user.PasswordHash = string(hash)

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		ta.users.EXPECT().UserByEmail(gomock.Any(), "meera@example.com").Return(user, nil)

		rec := ta.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: "meera@example.com", Password: "wrong"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid email or password", messageOf(t, rec))
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		ta.users.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(entity.User{}, entity.ErrUserNotFound)

		rec := ta.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: "nobody@example.com", Password: "right"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid email or password", messageOf(t, rec))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		ta.users.EXPECT().UserByEmail(gomock.Any(), "meera@example.com").Return(user, nil)

		rec := ta.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: "meera@example.com", Password: "right"})
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "/staff-dashboard", body["redirectUrl"])
		require.NotEmpty(t, body["token"])
		require.NotContains(t, body, "password")
		require.NotContains(t, body, "PasswordHash")
	})
}

func TestSendOtp_MailFailureIs500(t *testing.T) {
	t.Parallel()

	ta := newTestAPI(t)

	ta.users.EXPECT().UserByEmail(gomock.Any(), "new@example.com").Return(entity.User{}, entity.ErrUserNotFound)
	ta.otps.EXPECT().DeleteByEmail(gomock.Any(), "new@example.com").Return(nil)
	ta.otps.EXPECT().SaveOtp(gomock.Any(), gomock.Any()).Return(nil)
	ta.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(io.ErrUnexpectedEOF)

	rec := ta.do(t, http.MethodPost, "/api/otp/send-otp", "", api.SendOtpRequest{Email: "new@example.com", Type: "signup"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMe(t *testing.T) {
	t.Parallel()

	t.Run("no token", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)

		rec := ta.do(t, http.MethodGet, "/api/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Not authorized, no token", messageOf(t, rec))
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)

		rec := ta.do(t, http.MethodGet, "/api/auth/me", "Bearer abc.def.ghi", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		user := staffUser(entity.RoleStaff)

		rec := ta.do(t, http.MethodGet, "/api/auth/me", ta.login(t, user), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"empId"`)
		require.NotContains(t, rec.Body.String(), "$2a$10$secret")
	})
}

func TestCreateReport(t *testing.T) {
	t.Parallel()

	ta := newTestAPI(t)

	ta.reports.EXPECT().CountAtLocation(gomock.Any(), gomock.Any()).Return(2, nil)
	ta.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	ta.events.EXPECT().PublishReportEvent(gomock.Any(), gomock.Any())

	body := `{"problemType":"Pothole","description":"Big one","location":{"latitude":23.34,"longitude":85.30},"userId":"anonymous"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var report map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Equal(t, "high", report["priority"])
	require.Equal(t, "Pending", report["status"])
	require.Equal(t, "General", report["department"])
	require.Nil(t, report["userId"])
}

func TestCreateReport_NonStringSubmitter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID string
	}{
		{"number", `123`},
		{"object", `{"id":1}`},
		{"empty object", `{}`},
		{"boolean", `false`},
		{"null", `null`},
		{"not an id", `"citizen-42"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := newTestAPI(t)

			ta.reports.EXPECT().CountAtLocation(gomock.Any(), gomock.Any()).Return(0, nil)
			ta.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entity.Report) error {
				require.Nil(t, r.UserID)
				return nil
			})
			ta.events.EXPECT().PublishReportEvent(gomock.Any(), gomock.Any())

			body := `{"problemType":"Streetlight","description":"Not working","userId":` + tt.userID + `}`
			req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
			rec := httptest.NewRecorder()
			ta.router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code)

			var report map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
			require.Nil(t, report["userId"])
		})
	}
}

func TestCreateReport_StringSubmitter(t *testing.T) {
	t.Parallel()

	ta := newTestAPI(t)
	submitter := uuid.Must(uuid.NewV4())

	ta.reports.EXPECT().CountAtLocation(gomock.Any(), gomock.Any()).Return(0, nil)
	ta.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	ta.events.EXPECT().PublishReportEvent(gomock.Any(), gomock.Any())

	body := `{"problemType":"Garbage","description":"Overflowing bin","userId":"` + submitter.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var report map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Equal(t, submitter.String(), report["userId"])
}

func TestAssignReport(t *testing.T) {
	t.Parallel()

	t.Run("missing ids", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)

		rec := ta.do(t, http.MethodPut, "/api/reports/assign", "", api.AssignReportRequest{ReportID: "x"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "reportId and assignedTo are required", messageOf(t, rec))
	})

	t.Run("unknown report", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		ta.reports.EXPECT().AssignReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.Report{}, entity.ErrReportNotFound)

		rec := ta.do(t, http.MethodPut, "/api/reports/assign", "", api.AssignReportRequest{
			ReportID:   uuid.Must(uuid.NewV4()).String(),
			AssignedTo: uuid.Must(uuid.NewV4()).String(),
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Report not found", messageOf(t, rec))
	})

	t.Run("assigned", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		reportID := uuid.Must(uuid.NewV4())
		assignee := uuid.Must(uuid.NewV4())

		ta.reports.EXPECT().AssignReport(gomock.Any(), reportID, assignee).
			Return(entity.Report{ID: reportID, Status: entity.ReportStatusInProgress, AssignedTo: &assignee}, nil)
		ta.notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
		ta.unread.EXPECT().Invalidate(gomock.Any(), assignee).Return(nil)
		ta.events.EXPECT().PublishReportEvent(gomock.Any(), gomock.Any())

		rec := ta.do(t, http.MethodPut, "/api/reports/assign", "", api.AssignReportRequest{
			ReportID:   reportID.String(),
			AssignedTo: assignee.String(),
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AssignReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Report assigned successfully", resp.Message)
		require.Equal(t, entity.ReportStatusInProgress, resp.Report.Status)
	})
}

func TestResolveReport_ForbiddenForOtherJunior(t *testing.T) {
	t.Parallel()

	ta := newTestAPI(t)
	caller := staffUser(entity.RoleJuniorStaff)
	someoneElse := uuid.Must(uuid.NewV4())
	reportID := uuid.Must(uuid.NewV4())

	ta.reports.EXPECT().ReportByID(gomock.Any(), reportID).
		Return(entity.Report{ID: reportID, Status: entity.ReportStatusInProgress, AssignedTo: &someoneElse}, nil)

	rec := ta.do(t, http.MethodPut, "/api/reports/"+reportID.String()+"/resolve", ta.login(t, caller), nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNotificationRoutes(t *testing.T) {
	t.Parallel()

	t.Run("unread count", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		user := staffUser(entity.RoleJuniorStaff)
		ta.unread.EXPECT().Get(gomock.Any(), user.ID).Return(int64(3), int64(0), true, nil)

		rec := ta.do(t, http.MethodGet, "/api/notifications/unread-count", ta.login(t, user), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"count":3}`, rec.Body.String())
	})

	t.Run("delete foreign notification", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		user := staffUser(entity.RoleJuniorStaff)
		id := uuid.Must(uuid.NewV4())
		ta.notifications.EXPECT().DeleteNotification(gomock.Any(), id, user.ID).Return(entity.ErrNotificationNotFound)

		rec := ta.do(t, http.MethodDelete, "/api/notifications/"+id.String(), ta.login(t, user), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Notification not found", messageOf(t, rec))
	})

	t.Run("mark all read", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		user := staffUser(entity.RoleJuniorStaff)
		ta.notifications.EXPECT().MarkAllRead(gomock.Any(), user.ID).Return(int64(0), nil)

		rec := ta.do(t, http.MethodPut, "/api/notifications/mark-all-read", ta.login(t, user), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"All notifications marked as read"}`, rec.Body.String())
	})

	t.Run("requires token", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)

		rec := ta.do(t, http.MethodGet, "/api/notifications", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJuniorStaffRoute(t *testing.T) {
	t.Parallel()

	ta := newTestAPI(t)
	caller := staffUser(entity.RoleStaff)
	juniors := []entity.StaffMember{{ID: uuid.Must(uuid.NewV4()), Name: "Kiran", Role: entity.RoleJuniorStaff}}

	ta.users.EXPECT().StaffByRoleAndDepartment(gomock.Any(), entity.RoleJuniorStaff, "Roads").Return(juniors, nil)

	rec := ta.do(t, http.MethodGet, "/api/users/junior-staff", ta.login(t, caller), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.StaffMember
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, juniors, got)
}

func profileForm(t *testing.T, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":       "Meera",
		"email":      "meera@example.com",
		"empId":      "EMP-9",
		"department": "Roads",
		"contact":    "9111111111",
		"address":    "Ward 1",
	}

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if image != nil {
		fw, err := mw.CreateFormFile("profileImage", "me.png")
		require.NoError(t, err)

		_, err = fw.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("with image", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		user := staffUser(entity.RoleStaff)
		auth := ta.login(t, user)
		image := []byte("\x89PNG\r\n\x1a\nimage")

		ta.images.EXPECT().SaveProfileImage(gomock.Any(), user.ID, image).Return("/uploads/profile-images/new.png", nil)
		ta.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entity.User) (entity.User, error) { return u, nil },
		)

		body, contentType := profileForm(t, image)
		req := httptest.NewRequest(http.MethodPut, "/api/users/update-profile", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", auth)

		rec := httptest.NewRecorder()
		ta.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.UpdateProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "/uploads/profile-images/new.png", resp.UpdatedUser.ProfileImage)
		require.Equal(t, "EMP-9", resp.UpdatedUser.EmpID)
	})

	t.Run("image too large", func(t *testing.T) {
		t.Parallel()

		ta := newTestAPI(t)
		auth := ta.login(t, staffUser(entity.RoleStaff))

		body, contentType := profileForm(t, bytes.Repeat([]byte{0x89}, testImageLimit+1))
		req := httptest.NewRequest(http.MethodPut, "/api/users/update-profile", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", auth)

		rec := httptest.NewRecorder()
		ta.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
