package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awesome-portfolio/config"
	"awesome-portfolio/profile"
	"awesome-portfolio/uploads"
)

type adminFixture struct {
	router    *gin.Engine
	store     *profile.Store
	uploadDir string
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := profile.NewStore(filepath.Join(t.TempDir(), "profile.json"))
	uploadDir := t.TempDir()
	pipeline := uploads.NewPipeline(uploadDir, "/uploads")

	cfg := &config.Config{AdminUsername: "admin", AdminPassword: "secret"}
	admin := NewAdminHandler(store, pipeline, EnvCredentials(cfg))

	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	// same wiring as main: the mount serves the directory Ingest writes into
	r.Static("/uploads", pipeline.Dir())
	r.GET("/admin/login", admin.LoginPage)
	r.POST("/admin/login", admin.Login)
	// middleware left off so tests hit the editor directly
	r.GET("/admin", admin.EditForm)
	r.POST("/admin", admin.Update)

	return &adminFixture{router: r, store: store, uploadDir: uploadDir}
}

func multipartForm(t *testing.T, fields map[string]string, filename string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("photo", filename)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	fx := newAdminFixture(t)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	fx.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginSetsSessionCookie(t *testing.T) {
	fx := newAdminFixture(t)

	form := url.Values{"username": {"admin"}, "password": {"secret"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	fx.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "admin_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestUpdateSavesProfileWithoutPhoto(t *testing.T) {
	fx := newAdminFixture(t)

	body, contentType := multipartForm(t, map[string]string{
		"name":  "New Name",
		"title": "New Title",
		"bio":   "New bio text",
		"email": "new@example.com",
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin", body)
	req.Header.Set("Content-Type", contentType)
	fx.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Profile updated")

	rec := fx.store.Load()
	assert.Equal(t, "New Name", rec.Name)
	assert.Equal(t, "New Title", rec.Title)
	assert.Equal(t, "new@example.com", rec.Email)
	assert.Equal(t, profile.Defaults.ProfileImage, rec.ProfileImage, "image untouched when no upload")
}

func TestUpdateIngestsUploadedPhoto(t *testing.T) {
	fx := newAdminFixture(t)

	body, contentType := multipartForm(t, map[string]string{
		"name": "With Photo",
	}, "headshot.png", smallPNG(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin", body)
	req.Header.Set("Content-Type", contentType)
	fx.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	rec := fx.store.Load()
	require.True(t, strings.HasPrefix(rec.ProfileImage, "/uploads/"), "got %q", rec.ProfileImage)

	stored := filepath.Join(fx.uploadDir, filepath.Base(rec.ProfileImage))
	_, err := os.Stat(stored)
	assert.NoError(t, err, "primary rendition on disk")

	// the stored public path must resolve through the static mount
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, rec.ProfileImage, nil)
	fx.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "ingested path %q not served", rec.ProfileImage)
}

func TestUpdateRejectsDisallowedUpload(t *testing.T) {
	fx := newAdminFixture(t)

	body, contentType := multipartForm(t, map[string]string{
		"name": "Attacker",
	}, "malware.exe", []byte("MZ..."))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin", body)
	req.Header.Set("Content-Type", contentType)
	fx.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")
	// submitted values stay in the form for resubmission
	assert.Contains(t, w.Body.String(), "Attacker")

	entries, err := os.ReadDir(fx.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing written for a rejected upload")

	rec := fx.store.Load()
	assert.Equal(t, profile.Defaults, rec, "profile not saved on rejection")
}
