package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/util"
)

func setupAdminServiceTest(t *testing.T) (AdminService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	adminRepo := repository.NewAdminRepository(db)
	return NewAdminService(adminRepo, testAccessSecret, 2*time.Hour), mock
}

func adminRows(t *testing.T, password string) *sqlmock.Rows {
	hash, err := util.HashPassword(password)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "name", "password", "created_at"}).
		AddRow("admin-1", "operator", hash, time.Now())
}

func TestAdminService_Login(t *testing.T) {
	adminService, mock := setupAdminServiceTest(t)

	mock.ExpectQuery(`FROM dashboard_users`).
		WithArgs("operator").
		WillReturnRows(adminRows(t, "secret-password"))

	token, err := adminService.Login(context.Background(), "operator", "secret-password")

	require.NoError(t, err)
	claims, err := util.ValidateToken(token, testAccessSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.ID)
	assert.Equal(t, "operator", claims.Name)
	assert.Empty(t, claims.Phone)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	adminService, mock := setupAdminServiceTest(t)

	mock.ExpectQuery(`FROM dashboard_users`).
		WithArgs("operator").
		WillReturnRows(adminRows(t, "secret-password"))

	token, err := adminService.Login(context.Background(), "operator", "not-the-password")

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, token)
}

func TestAdminService_Login_UnknownAccount(t *testing.T) {
	adminService, mock := setupAdminServiceTest(t)

	mock.ExpectQuery(`FROM dashboard_users`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password", "created_at"}))

	token, err := adminService.Login(context.Background(), "nobody", "whatever")

	assert.ErrorIs(t, err, ErrAdminNotFound)
	assert.Empty(t, token)
}
