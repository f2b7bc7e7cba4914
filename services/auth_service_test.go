package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewAuthService(db, NewPasswordHasher(bcrypt.MinCost), newTestTokenService(t)), mock
}

func TestAuthService_Register(t *testing.T) {
	testCases := []struct {
		name    string
		req     RegisterRequest
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "registered",
			req:  RegisterRequest{Username: "ana", Email: " Ana@Example.com ", Password: "secret123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
					WithArgs("ana@example.com", "ana").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`INSERT INTO "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
			},
		},
		{
			name: "taken",
			req:  RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "secret123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: ErrUserExists,
		},
		{
			name: "lost the race",
			req:  RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "secret123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`INSERT INTO "users"`).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: ErrUserExists,
		},
		{
			name: "short password",
			req:  RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			wantErr: ErrInvalidCredentialFormat,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mock := newTestAuthService(t)
			tc.mock(mock)

			res, err := svc.Register(context.Background(), &tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "bearer", res.TokenType)
				assert.Equal(t, uint(11), res.User.ID)
				assert.Equal(t, "ana@example.com", res.User.Email)
				assert.NotEqual(t, tc.req.Password, res.User.PasswordHash)

				id, err := svc.tokens.ValidateToken(res.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, uint(11), id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := NewPasswordHasher(bcrypt.MinCost).Hash("secret123")
	require.NoError(t, err)
	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow(3, "ana", "ana@example.com", hash)
	}

	testCases := []struct {
		name     string
		password string
		rows     func() *sqlmock.Rows
		dbErr    error
		wantErr  error
	}{
		{name: "ok", password: "secret123", rows: userRows},
		{name: "wrong password", password: "secret124", rows: userRows, wantErr: ErrInvalidLogin},
		{
			name:     "unknown email",
			password: "secret123",
			rows:     func() *sqlmock.Rows { return sqlmock.NewRows([]string{"id"}) },
			wantErr:  ErrInvalidLogin,
		},
		{name: "store down", password: "secret123", dbErr: errors.New("db down"), wantErr: errors.New("db down")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mock := newTestAuthService(t)
			q := mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`)
			if tc.dbErr != nil {
				q.WillReturnError(tc.dbErr)
			} else {
				q.WillReturnRows(tc.rows())
			}

			res, err := svc.Login(context.Background(), &LoginRequest{Email: "ANA@example.com", Password: tc.password})
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(3), res.User.ID)
			assert.NotEmpty(t, res.AccessToken)
		})
	}
}
