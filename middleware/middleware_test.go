package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thyeshengleng/collection-form/models"
	"github.com/thyeshengleng/collection-form/repositories/mocks"
	"github.com/thyeshengleng/collection-form/userctx"
)

func TestAuditLoggerRecordsMutations(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepository(t)
	auditRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(e *models.AuditLogEntry) bool {
			return e.Method == http.MethodPost &&
				e.Path == "/records" &&
				e.StatusCode == http.StatusSeeOther &&
				e.IPAddress == "10.0.0.1" &&
				strings.Contains(e.FormData, `"company_name":"Acme"`) &&
				e.UserEmail == userctx.Anonymous
		})).
		Return(nil)

	r := chi.NewRouter()
	r.Use(AuditLogger(auditRepo))
	r.Post("/records", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Acme", r.PostFormValue("company_name"))
		http.Redirect(w, r, "/records", http.StatusSeeOther)
	})
	r.Get("/records", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	form := url.Values{"company_name": {"Acme"}}
	req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// GET requests are not audited
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/records", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:51234"
	assert.Equal(t, "192.168.1.5", getIPAddress(req))

	req.Header.Set("X-Real-IP", "172.16.0.9")
	assert.Equal(t, "172.16.0.9", getIPAddress(req))
}

func newSessionRouter(t *testing.T, protected http.HandlerFunc) *chi.Mux {
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:   "memory",
		CookieName: "test_session",
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessionHandler)
	r.Get("/signin", func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		sess.Set(SessionUserEmail, "ops@example.com")
		sess.Set(SessionUserName, "Ops")
		w.WriteHeader(http.StatusNoContent)
	})
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth)
		r.Get("/records", protected)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	var seenEmail, seenName string
	router := newSessionRouter(t, func(w http.ResponseWriter, r *http.Request) {
		seenEmail = userctx.GetUserEmail(r.Context())
		seenName = userctx.GetUserName(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	// Anonymous users are sent to the login page
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/records?q=acme", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// Sign in, then reuse the session cookie
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/signin", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops@example.com", seenEmail)
	assert.Equal(t, "Ops", seenName)
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
