package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hopehealth/middleware"
	"hopehealth/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeSessionService struct {
	authenticated bool
	loggedUser    string
	loginErr      error
	cycleStarted  bool
}

func (f *fakeSessionService) IsAuthenticated() bool    { return f.authenticated }
func (f *fakeSessionService) CurrentIdentity() string  { return f.loggedUser }
func (f *fakeSessionService) StartRefreshCycle()       { f.cycleStarted = true }
func (f *fakeSessionService) StopRefreshCycle()        {}
func (f *fakeSessionService) RefreshNow(context.Context) error { return nil }

func (f *fakeSessionService) Login(_ context.Context, username, _ string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.authenticated = true
	f.loggedUser = username
	return username, nil
}

func (f *fakeSessionService) Logout(context.Context) error {
	f.authenticated = false
	f.loggedUser = ""
	return nil
}

func newSessionRouter(svc session.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &HandlerBundle{Sessions: svc}
	r := gin.New()
	r.POST("/api/session/login", hb.LoginHandler)
	r.GET("/api/session/state", hb.SessionStateHandler)
	guarded := r.Group("", middleware.SessionGuard(hb.Sessions))
	guarded.POST("/api/session/logout", hb.LogoutHandler)
	return r
}

func TestLoginHandlerStartsRefreshCycle(t *testing.T) {
	svc := &fakeSessionService{}
	router := newSessionRouter(svc)

	body := `{"username":"root.admin","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/session/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.cycleStarted)
	require.Contains(t, w.Body.String(), `"loggedUser":"root.admin"`)
}

func TestLoginHandlerRejectsBadCredentials(t *testing.T) {
	svc := &fakeSessionService{loginErr: session.ErrInvalidCredentials}
	router := newSessionRouter(svc)

	body := `{"username":"root.admin","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/session/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, svc.cycleStarted)
}

func TestLoginHandlerRejectsMissingRole(t *testing.T) {
	svc := &fakeSessionService{loginErr: session.ErrForbidden}
	router := newSessionRouter(svc)

	body := `{"username":"plain.user","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/session/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionGuardBlocksUnauthenticated(t *testing.T) {
	svc := &fakeSessionService{}
	router := newSessionRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/session/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionStateReportsIdentity(t *testing.T) {
	svc := &fakeSessionService{authenticated: true, loggedUser: "root.admin"}
	router := newSessionRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/session/state", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"authenticated":true`)
	require.Contains(t, w.Body.String(), `"loggedUser":"root.admin"`)
}
