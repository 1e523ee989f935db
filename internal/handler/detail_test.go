package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/repository"
)

func setupMockHandler(t *testing.T) (sqlmock.Sqlmock, *AdminHandler) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewAdminHandler(
		repository.NewHospitalRepo(db),
		repository.NewRoleRepo(db),
		repository.NewUserRepo(db),
		repository.NewDoctorRepo(db),
		4,
	)
	return mock, h
}

func detailContext(id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestGetRoleReturnsJoinedRecord(t *testing.T) {
	mock, h := setupMockHandler(t)

	rows := sqlmock.NewRows([]string{"id", "role_name", "permissions", "hospital_id", "name"}).
		AddRow(2, "Nurse", "read,write", 1, "St. Mary")
	mock.ExpectQuery(`FROM roles r LEFT JOIN hospitals h`).
		WithArgs(2).
		WillReturnRows(rows)

	c, rec := detailContext("2")
	require.NoError(t, h.GetRole(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role_name":"Nurse"`)
	assert.Contains(t, rec.Body.String(), `"hospital_name":"St. Mary"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHospitalMissingRowIs404(t *testing.T) {
	mock, h := setupMockHandler(t)

	mock.ExpectQuery(`SELECT id, name, address, created_at FROM hospitals`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	c, rec := detailContext("99")
	require.NoError(t, h.GetHospital(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "hospital not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserInvalidIDIs400(t *testing.T) {
	_, h := setupMockHandler(t)

	c, rec := detailContext("not-a-number")
	require.NoError(t, h.GetUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid id")
}

func TestGetDoctorReturnsDenormalizedNames(t *testing.T) {
	mock, h := setupMockHandler(t)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "hospital_id", "specialty", "short_bio", "username", "full_name", "name",
	}).AddRow(4, 3, 1, "Cardiology", nil, "jdoe", "Jane Doe", "St. Mary")
	mock.ExpectQuery(`FROM doctors d\s+LEFT JOIN users u`).
		WithArgs(4).
		WillReturnRows(rows)

	c, rec := detailContext("4")
	require.NoError(t, h.GetDoctor(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"jdoe"`)
	assert.Contains(t, rec.Body.String(), `"hospital_name":"St. Mary"`)
	assert.Contains(t, rec.Body.String(), `"short_bio":null`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
