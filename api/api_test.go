package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeIntake struct {
	calls   int
	receipt models.QuoteReceipt
	err     error
}

func (f *fakeIntake) Submit(_ context.Context, _ models.QuotePayload) (models.QuoteReceipt, error) {
	f.calls++
	return f.receipt, f.err
}

func testConfig() map[string]string {
	return map[string]string{
		"ADMIN_USER":       "admin",
		"ADMIN_PASSWORD":   "secreto",
		"ACCEPTED_ORIGINS": "https://domp.mx",
	}
}

func newTestRouter(store database.Store, intake quoteSubmitter, c map[string]string) http.Handler {
	if intake == nil {
		intake = &fakeIntake{}
	}
	return newRouter(database.New(store), intake, withConfig(c))
}

var adminCookie = &http.Cookie{Name: sessionCookieName, Value: sessionCookieValue}

func do(h http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type testEnvelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Warning string          `json:"warning"`
	Field   string          `json:"field"`
	Details string          `json:"details"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.True(t, env.OK, rec.Body.String())
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAdminRoutesRequireSession(t *testing.T) {
	store := database.NewMemoryStore()
	h := newTestRouter(store, nil, testConfig())

	project := `{"name":"Casa López","type":"residencial","city":"Chihuahua","description":"Casa","status":"publicado"}`
	service := `{"title":"Obra","description":"d","benefits":["b"],"idealClient":"c"}`

	for _, tc := range []struct {
		method, target, body string
	}{
		{http.MethodGet, "/admin/settings", ""},
		{http.MethodPut, "/admin/settings", `{"city":"Delicias"}`},
		{http.MethodPut, "/admin/settings/social/youtube", `{"url":"https://youtube.com/domp"}`},
		{http.MethodDelete, "/admin/settings/social/instagram", ""},
		{http.MethodGet, "/admin/projects", ""},
		{http.MethodPost, "/admin/projects", project},
		{http.MethodPut, "/admin/projects", project},
		{http.MethodDelete, "/admin/projects?id=x", ""},
		{http.MethodGet, "/admin/services", ""},
		{http.MethodPost, "/admin/services", service},
		{http.MethodPut, "/admin/services", service},
		{http.MethodDelete, "/admin/services?id=vivienda-residencial", ""},
		{http.MethodGet, "/cotizaciones", ""},
		{http.MethodPatch, "/cotizaciones/6f1c1b8e-58a4-4a83-9d7e-000000000001", `{"status":"cerrado"}`},
		{http.MethodDelete, "/cotizaciones/6f1c1b8e-58a4-4a83-9d7e-000000000001", ""},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := do(h, tc.method, tc.target, tc.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.OK)
			assert.Equal(t, "No autorizado", env.Message)

			wrong := &http.Cookie{Name: sessionCookieName, Value: "yes"}
			assert.Equal(t, http.StatusUnauthorized, do(h, tc.method, tc.target, tc.body, wrong).Code)
		})
	}

	for _, name := range []string{database.SettingsCollection, database.ProjectsCollection, database.ServicesCollection} {
		entries, err := store.Collection(name).FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries, "%s must be untouched", name)
	}
}

func TestLogin(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		h := newTestRouter(database.NewMemoryStore(), nil, map[string]string{})
		rec := do(h, http.MethodPost, "/admin/login", `{"username":"admin","password":"secreto"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Message, "no está configurada")
		assert.Nil(t, findCookie(rec, sessionCookieName))
	})

	t.Run("bad credentials", func(t *testing.T) {
		h := newTestRouter(database.NewMemoryStore(), nil, testConfig())
		for _, body := range []string{
			`{"username":"admin","password":"Secreto"}`,
			`{"username":"admin ","password":"secreto"}`,
			`{}`,
		} {
			rec := do(h, http.MethodPost, "/admin/login", body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, body)
			assert.Equal(t, "Credenciales inválidas", decodeEnvelope(t, rec).Message)
			assert.Nil(t, findCookie(rec, sessionCookieName))
		}
	})

	t.Run("success", func(t *testing.T) {
		h := newTestRouter(database.NewMemoryStore(), nil, testConfig())
		rec := do(h, http.MethodPost, "/admin/login", `{"username":"admin","password":"secreto"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		cookie := findCookie(rec, sessionCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, sessionCookieValue, cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 8*60*60, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.False(t, cookie.Secure)

		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/admin/projects", "", cookie).Code)
	})

	t.Run("secure in production", func(t *testing.T) {
		c := testConfig()
		c["ENV"] = "production"
		rec := do(newTestRouter(database.NewMemoryStore(), nil, c), http.MethodPost, "/admin/login", `{"username":"admin","password":"secreto"}`)
		cookie := findCookie(rec, sessionCookieName)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
	})

	t.Run("invalid json", func(t *testing.T) {
		rec := do(newTestRouter(database.NewMemoryStore(), nil, testConfig()), http.MethodPost, "/admin/login", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "json", decodeEnvelope(t, rec).Field)
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	rec := do(newTestRouter(database.NewMemoryStore(), nil, testConfig()), http.MethodPost, "/admin/logout", "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestHealth(t *testing.T) {
	rec := do(newTestRouter(database.NewMemoryStore(), nil, testConfig()), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeData[healthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.Database)
	assert.NotEmpty(t, health.Uptime)

	rec = do(newTestRouter(database.UnconfiguredStore{}, nil, testConfig()), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health = decodeData[healthResponse](t, rec)
	assert.Equal(t, "degraded", health.Status)
	assert.NotEqual(t, "ok", health.Database)
}

func TestCORS(t *testing.T) {
	h := newTestRouter(database.NewMemoryStore(), nil, testConfig())

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/admin/projects", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("https://domp.mx")
	assert.Equal(t, "https://domp.mx", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = preflight("https://evil.example")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
