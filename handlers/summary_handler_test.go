package handlers

import (
	"net/http"
	"testing"

	"studybuddy/models"
	"studybuddy/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSummaryHandler_CreateSummary(t *testing.T) {
	valid := gin.H{
		"study_date":   "2024-03-01",
		"study_time":   45,
		"difficulty":   "Fácil",
		"summary_text": "maps and slices",
	}

	testCases := []struct {
		name     string
		body     gin.H
		mock     func(mock sqlmock.Sqlmock)
		wantCode int
		wantBody string
	}{
		{
			name: "created",
			body: valid,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "summaries"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "summaries"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
				mock.ExpectCommit()
			},
			wantCode: http.StatusCreated,
			wantBody: `"study_date":"2024-03-01"`,
		},
		{
			name: "same day twice",
			body: valid,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "summaries"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "malformed date",
			body: gin.H{
				"study_date":   "2024/03/01",
				"study_time":   45,
				"difficulty":   "Fácil",
				"summary_text": "maps and slices",
			},
			mock:     func(mock sqlmock.Sqlmock) {},
			wantCode: http.StatusBadRequest,
			wantBody: `invalid date`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)
			h := NewSummaryHandler(services.NewSummaryService(db))

			server := gin.New()
			server.POST("/summaries", asUser(&models.User{ID: 1}), h.CreateSummary)

			recorder := doJSON(server, http.MethodPost, "/summaries", tc.body)
			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tc.wantBody)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
