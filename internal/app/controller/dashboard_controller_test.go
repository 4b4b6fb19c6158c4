package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/internal/app/service"
	"github.com/binzaridot/binzari-backend/internal/middleware"
	"github.com/binzaridot/binzari-backend/pkg/util"
)

func setupDashboardControllerTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	adminService := service.NewAdminService(repository.NewAdminRepository(db), testAccessSecret, 2*time.Hour)
	dashboardService := service.NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewCollegeAuthRepository(db),
		repository.NewStoreRepository(db),
		repository.NewPartnerRepository(db),
		repository.NewPartnershipRepository(db),
	)

	ctrl := NewDashboardController(adminService, dashboardService)
	authMiddleware := middleware.NewAuthMiddleware(testAccessSecret, testRefreshSecret)

	router := gin.New()
	router.POST("/dashboard/login", ctrl.Login)
	router.GET("/dashboard/main", authMiddleware.Authenticate(), ctrl.Main)

	return router, mock
}

func TestDashboardController_Login_Success(t *testing.T) {
	router, mock := setupDashboardControllerTest(t)

	hash, err := util.HashPassword("secret-password")
	require.NoError(t, err)
	mock.ExpectQuery(`FROM dashboard_users`).
		WithArgs("operator").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password", "created_at"}).
			AddRow("admin-1", "operator", hash, time.Now()))

	body, _ := json.Marshal(DashboardLoginRequest{Name: "operator", Password: "secret-password"})
	req := httptest.NewRequest("POST", "/dashboard/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["accessToken"])
	assert.NotContains(t, response, "refreshToken")
}

func TestDashboardController_Login_BadCredentials(t *testing.T) {
	router, mock := setupDashboardControllerTest(t)

	hash, err := util.HashPassword("secret-password")
	require.NoError(t, err)
	mock.ExpectQuery(`FROM dashboard_users`).
		WithArgs("operator").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password", "created_at"}).
			AddRow("admin-1", "operator", hash, time.Now()))

	body, _ := json.Marshal(DashboardLoginRequest{Name: "operator", Password: "wrong"})
	req := httptest.NewRequest("POST", "/dashboard/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_INVALID_CREDENTIALS")
}

func TestDashboardController_Main(t *testing.T) {
	router, mock := setupDashboardControllerTest(t)

	mock.ExpectQuery(`FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "phone", "is_verified", "college_auth", "created_at"}).
			AddRow("user-1", "홍길동", "", "01012345678", false, `{}`, time.Now()))
	mock.ExpectQuery(`FROM college_auths`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "info21_image", "created_at", "updated_at"}))
	mock.ExpectQuery(`FROM stores`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "lat", "lon", "url", "image", "created_at"}))
	mock.ExpectQuery(`FROM partners`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "created_at"}))
	mock.ExpectQuery(`FROM partnerships`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "partner_id", "short_description", "long_description", "created_at", "updated_at"}))

	token, err := util.GenerateAdminToken("admin-1", "operator", testAccessSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/dashboard/main", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var dump service.MainDump
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dump))
	require.Len(t, dump.Users, 1)
	assert.Equal(t, "홍길동", dump.Users[0].Name)
	assert.Empty(t, dump.Stores)
	assert.Empty(t, dump.Partnerships)
}

func TestDashboardController_Main_NoToken(t *testing.T) {
	router, _ := setupDashboardControllerTest(t)

	req := httptest.NewRequest("GET", "/dashboard/main", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
