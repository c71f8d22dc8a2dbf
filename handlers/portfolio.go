package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"awesome-portfolio/config"
	"awesome-portfolio/models"
	"awesome-portfolio/profile"
)

// PortfolioHandler serves the public pages and the JSON API. The profile
// record is loaded from the store on every request rather than cached in a
// process-wide variable, so an admin edit shows up on the next page load.
type PortfolioHandler struct {
	Config *config.Config
	Store  *profile.Store
}

// Home page route
func (h *PortfolioHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"user":     h.Store.Load(),
		"projects": models.Projects[:3],
		"skills":   models.Skills[:4],
		"timeline": models.Timeline,
	})
}

// Full project listing
func (h *PortfolioHandler) Projects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"user":     h.Store.Load(),
		"projects": models.Projects,
	})
}

// Single project as JSON, 404 on ids outside the hardcoded list
func (h *PortfolioHandler) Project(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	project, ok := models.ProjectByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}
