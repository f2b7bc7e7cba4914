package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"studybuddy/models"
	"studybuddy/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	tokens, err := services.NewTokenService("test-secret", "HS256", "studybuddy", time.Hour)
	require.NoError(t, err)

	h := NewAuthHandler(
		services.NewAuthService(db, services.NewPasswordHasher(bcrypt.MinCost), tokens),
		services.NewUserService(db, nil),
	)
	server := gin.New()
	server.POST("/register", h.Register)
	server.POST("/login", h.Login)
	server.GET("/me", asUser(&models.User{ID: 3}), h.Me)
	return server, mock
}

func TestAuthHandler_Register(t *testing.T) {
	testCases := []struct {
		name     string
		body     gin.H
		mock     func(mock sqlmock.Sqlmock)
		wantCode int
	}{
		{
			name: "created",
			body: gin.H{"username": "ana", "email": "ana@example.com", "password": "secret123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`INSERT INTO "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "bad email",
			body:     gin.H{"username": "ana", "email": "nope", "password": "secret123"},
			mock:     func(mock sqlmock.Sqlmock) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "username too short",
			body:     gin.H{"username": "an", "email": "ana@example.com", "password": "secret123"},
			mock:     func(mock sqlmock.Sqlmock) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: gin.H{"username": "ana", "email": "ana@example.com", "password": "secret123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantCode: http.StatusConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, mock := newAuthServer(t)
			tc.mock(mock)

			recorder := doJSON(server, http.MethodPost, "/register", tc.body)
			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusCreated {
				var res map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				assert.NotEmpty(t, res["access_token"])
				assert.Equal(t, "bearer", res["token_type"])
				assert.NotContains(t, recorder.Body.String(), "password")
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	server, mock := newAuthServer(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	recorder := doJSON(server, http.MethodPost, "/login", gin.H{"email": "ana@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"incorrect email or password"}`, recorder.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	server, mock := newAuthServer(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow(3, "ana", "ana@example.com", "secret-hash"))

	recorder := doJSON(server, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"username":"ana"`)
	assert.NotContains(t, recorder.Body.String(), "secret-hash")
}
