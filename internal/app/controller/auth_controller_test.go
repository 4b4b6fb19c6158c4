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

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func setupAuthControllerTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	collegeAuthRepo := repository.NewCollegeAuthRepository(db)

	authService := service.NewAuthService(
		userRepo,
		partnerRepo,
		collegeAuthRepo,
		testAccessSecret,
		testRefreshSecret,
		15*time.Minute,
		7*24*time.Hour,
	)

	ctrl := NewAuthController(authService)
	authMiddleware := middleware.NewAuthMiddleware(testAccessSecret, testRefreshSecret)

	router := gin.New()
	router.POST("/api/login", ctrl.Login)
	router.GET("/api/refresh", authMiddleware.AuthenticateRefresh(), ctrl.Refresh)
	router.GET("/api/me", authMiddleware.Authenticate(), ctrl.Me)
	router.GET("/api/getUserCollege", authMiddleware.Authenticate(), ctrl.GetUserCollege)

	return router, mock
}

func TestAuthController_Login_Success(t *testing.T) {
	router, mock := setupAuthControllerTest(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("홍길동", "https://example.com/p.png", "01012345678").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_new"}).
			AddRow("user-1", true))
	mock.ExpectExec(`UPDATE users SET refresh_token`).
		WithArgs(sqlmock.AnyArg(), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(LoginRequest{
		Name:  "홍길동",
		Image: "https://example.com/p.png",
		Phone: "01012345678",
	})
	req := httptest.NewRequest("POST", "/api/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.NotEmpty(t, response["accessToken"])
	assert.NotEmpty(t, response["refreshToken"])
	assert.Equal(t, true, response["isRegister"])
}

func TestAuthController_Login_MissingPhone(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	body, _ := json.Marshal(map[string]string{"name": "홍길동"})
	req := httptest.NewRequest("POST", "/api/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")
}

func TestAuthController_Refresh_Success(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	refreshToken, err := util.GenerateUserToken("user-1", "01012345678", testRefreshSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	accessToken, ok := response["accessToken"].(string)
	require.True(t, ok)
	claims, err := util.ValidateToken(accessToken, testAccessSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
}

func TestAuthController_Refresh_AccessTokenRejected(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	// An access token must not drive the refresh endpoint.
	accessToken, err := util.GenerateUserToken("user-1", "01012345678", testAccessSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_Me_Success(t *testing.T) {
	router, mock := setupAuthControllerTest(t)

	mock.ExpectQuery(`SELECT id, name, image, phone`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "phone", "is_verified", "college_auth", "created_at"}).
			AddRow("user-1", "홍길동", "", "01012345678", false, `{}`, time.Now()))
	mock.ExpectQuery(`SELECT 1 FROM college_auths`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))

	token, err := util.GenerateUserToken("user-1", "01012345678", testAccessSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool            `json:"success"`
		User    service.Profile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, "홍길동", response.User.Name)
	assert.False(t, response.User.IsVerified)
	assert.Empty(t, response.User.CollegeAuth)
	assert.True(t, response.User.IsAuthenticating)
}

func TestAuthController_Me_NoToken(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	req := httptest.NewRequest("GET", "/api/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_GetUserCollege(t *testing.T) {
	router, mock := setupAuthControllerTest(t)

	mock.ExpectQuery(`SELECT college_auth FROM users`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"college_auth"}).
			AddRow(`{college-1,college-2}`))
	mock.ExpectQuery(`SELECT name FROM partners`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("공과대학").
			AddRow("자연과학대학"))

	token, err := util.GenerateUserToken("user-1", "01012345678", testAccessSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/getUserCollege", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "공과대학, 자연과학대학", response["college_auth"])
}
