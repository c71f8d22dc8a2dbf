// admin.go - profile editor for the single admin user
package handlers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"awesome-portfolio/config"
	"awesome-portfolio/profile"
	"awesome-portfolio/uploads"
)

// CredentialCheck decides whether a login attempt identifies the admin.
type CredentialCheck func(username, password string) bool

// EnvCredentials matches against the environment-configured admin account.
func EnvCredentials(cfg *config.Config) CredentialCheck {
	return func(username, password string) bool {
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
		return userOK && passOK
	}
}

type AdminHandler struct {
	Store            *profile.Store
	Uploads          *uploads.Pipeline
	CheckCredentials CredentialCheck

	token string
}

func NewAdminHandler(store *profile.Store, pipeline *uploads.Pipeline, check CredentialCheck) *AdminHandler {
	h := &AdminHandler{
		Store:            store,
		Uploads:          pipeline,
		CheckCredentials: check,
		token:            generateSessionToken(),
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", h.token)
	}
	return h
}

func generateSessionToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin session token:", err)
	}
	return hex.EncodeToString(bytes)
}

// AuthMiddleware gates the profile editor behind the session cookie.
func (h *AdminHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{
		"title": "Admin Login",
	})
}

func (h *AdminHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if h.CheckCredentials(username, password) {
		// Session cookie valid for 24 hours
		c.SetCookie("admin_token", h.token, 3600*24, "/admin", "", false, true)
		log.Printf("Admin login successful")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	log.Printf("Failed admin login attempt from %s", c.ClientIP())
	c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
		"error": "Invalid credentials",
	})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

// EditForm renders the profile editor with the current record.
func (h *AdminHandler) EditForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"user": h.Store.Load(),
	})
}

// Update ingests the uploaded photo first (when one was submitted), then
// saves the profile record. Both failure paths re-render the form with the
// submitted values so the admin can correct and resubmit.
func (h *AdminHandler) Update(c *gin.Context) {
	rec := profile.Record{
		Name:         c.PostForm("name"),
		Title:        c.PostForm("title"),
		Bio:          c.PostForm("bio"),
		Email:        c.PostForm("email"),
		ProfileImage: c.PostForm("profile_image"),
	}
	if rec.ProfileImage == "" {
		rec.ProfileImage = h.Store.Load().ProfileImage
	}

	fileHeader, err := c.FormFile("photo")
	if err == nil && fileHeader.Size > 0 {
		content, err := readUpload(fileHeader)
		if err != nil {
			log.Printf("admin: could not read upload: %v", err)
			c.HTML(http.StatusBadRequest, "admin.html", gin.H{
				"user":  rec,
				"error": "Could not read the uploaded file. Please try again.",
			})
			return
		}

		storedPath, err := h.Uploads.Ingest(fileHeader.Filename, content)
		if err != nil {
			status := http.StatusInternalServerError
			message := "Could not store the uploaded photo. Please try again."
			if errors.Is(err, uploads.ErrDisallowedType) {
				status = http.StatusBadRequest
				message = "That file type is not allowed. Use png, jpg, jpeg, gif or webp."
			}
			log.Printf("admin: upload rejected: %v", err)
			c.HTML(status, "admin.html", gin.H{
				"user":  rec,
				"error": message,
			})
			return
		}
		rec.ProfileImage = storedPath
	}

	if err := h.Store.Save(rec); err != nil {
		log.Printf("admin: profile save failed: %v", err)
		c.HTML(http.StatusInternalServerError, "admin.html", gin.H{
			"user":  rec,
			"error": "Could not save the profile. Your changes are still in the form below.",
		})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"user":    h.Store.Load(),
		"success": "Profile updated",
	})
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
