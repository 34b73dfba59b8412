package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicSettingsServeDefaults(t *testing.T) {
	h := newTestRouter(database.UnconfiguredStore{}, nil, testConfig())

	rec := do(h, http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decodeData[models.SiteSettings](t, rec)
	assert.Equal(t, database.DefaultSettings().Hero, settings.Hero)
	assert.Equal(t, []string{"instagram", "facebook", "tiktok", "linkedin"}, settings.Social.Keys())
}

func TestAdminSettingsWarnWhenStoreIsDown(t *testing.T) {
	store := database.NewMemoryStore()
	store.SetUnavailable(true)
	h := newTestRouter(store, nil, testConfig())

	rec := do(h, http.MethodGet, "/admin/settings", "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.OK)
	assert.Equal(t, settingsFallbackWarning, env.Warning)

	store.SetUnavailable(false)
	env = decodeEnvelope(t, do(h, http.MethodGet, "/admin/settings", "", adminCookie))
	assert.Empty(t, env.Warning)
}

func TestUpdateSettingsMergesOneLevel(t *testing.T) {
	h := newTestRouter(database.NewMemoryStore(), nil, testConfig())

	rec := do(h, http.MethodPut, "/admin/settings", `{
		"phones": [],
		"hero": {"headline": "Construimos contigo"},
		"social": {"youtube": "https://youtube.com/@domp", "instagram": "https://instagram.com/domp"}
	}`, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Configuración actualizada correctamente", decodeEnvelope(t, rec).Message)

	defaults := database.DefaultSettings()
	got := decodeData[models.SiteSettings](t, do(h, http.MethodGet, "/settings", ""))

	assert.Equal(t, []string{}, got.Phones)
	assert.Equal(t, defaults.Emails, got.Emails)
	assert.Equal(t, "Construimos contigo", got.Hero.Headline)
	assert.Equal(t, defaults.Hero.Subheadline, got.Hero.Subheadline)
	assert.Equal(t, []string{"instagram", "facebook", "tiktok", "linkedin", "youtube"}, got.Social.Keys())
	url, _ := got.Social.Get("instagram")
	assert.Equal(t, "https://instagram.com/domp", url)
}

func TestUpdateSettingsRejectsBadBodies(t *testing.T) {
	store := database.NewMemoryStore()
	h := newTestRouter(store, nil, testConfig())

	rec := do(h, http.MethodPut, "/admin/settings", `{"hero":`, adminCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPut, "/admin/settings", `{"phones":"614"}`, adminCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	store.SetUnavailable(true)
	rec = do(h, http.MethodPut, "/admin/settings", `{"city":"Delicias"}`, adminCookie)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Message, "DATABASE_URL")
}

func TestSocialLinkEndpoints(t *testing.T) {
	h := newTestRouter(database.NewMemoryStore(), nil, testConfig())

	rec := do(h, http.MethodPut, "/admin/settings/social/youtube", `{"url":" https://youtube.com/@domp "}`, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decodeData[models.SiteSettings](t, rec)
	url, ok := settings.Social.Get("youtube")
	assert.True(t, ok)
	assert.Equal(t, "https://youtube.com/@domp", url)

	rec = do(h, http.MethodDelete, "/admin/settings/social/facebook", "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	settings = decodeData[models.SiteSettings](t, rec)
	assert.Equal(t, []string{"instagram", "tiktok", "linkedin", "youtube"}, settings.Social.Keys())

	rec = do(h, http.MethodDelete, "/admin/settings/social/facebook", "", adminCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
