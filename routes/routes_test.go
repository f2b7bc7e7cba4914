package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studybuddy/handlers"
	"studybuddy/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens, err := services.NewTokenService("test-secret", "HS256", "studybuddy", time.Hour)
	require.NoError(t, err)
	guard := services.NewAccessGuard(tokens, services.NewUserService(nil, nil), 0)

	router := gin.New()
	SetupRoutes(router, &Handlers{
		Auth:      handlers.NewAuthHandler(nil, nil),
		User:      handlers.NewUserHandler(nil, guard),
		Challenge: handlers.NewChallengeHandler(nil),
		Summary:   handlers.NewSummaryHandler(nil),
		Question:  handlers.NewQuestionHandler(nil),
		Result:    handlers.NewResultHandler(nil),
		WS:        handlers.NewWSHandler(services.NewHub(), guard, nil),
	}, guard)
	return router
}

func TestHealth(t *testing.T) {
	recorder := httptest.NewRecorder()
	newRouter(t).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"StudyBuddy API"}`, recorder.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	recorder := httptest.NewRecorder()
	newRouter(t).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	router := newRouter(t)

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/challenges"},
		{http.MethodPost, "/api/summaries"},
		{http.MethodGet, "/api/questions/summary/1"},
		{http.MethodPost, "/api/results/submit"},
		{http.MethodGet, "/api/results/summary/1"},
		{http.MethodGet, "/ws"},
	} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(r.method, r.path, nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, r.path)
		assert.Equal(t, "Bearer", recorder.Header().Get("WWW-Authenticate"), r.path)
	}
}
