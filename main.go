package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"awesome-portfolio/config"
	"awesome-portfolio/handlers"
	"awesome-portfolio/profile"
	"awesome-portfolio/uploads"
)

func main() {
	cfg := config.Load()

	store := profile.NewStore(cfg.ProfilePath)
	pipeline := uploads.NewPipeline(cfg.UploadDir, cfg.UploadURLBase)

	site := &handlers.PortfolioHandler{Config: cfg, Store: store}
	admin := handlers.NewAdminHandler(store, pipeline, handlers.EnvCredentials(cfg))

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/static", "./static")
	// Uploads are served straight from the directory Ingest writes into
	r.Static(cfg.UploadURLBase, pipeline.Dir())

	r.GET("/", site.Home)
	r.GET("/projects", site.Projects)

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	api.POST("/contact", site.Contact)
	api.GET("/projects/:id", site.Project)

	r.GET("/admin/login", admin.LoginPage)
	r.POST("/admin/login", admin.Login)
	r.GET("/admin/logout", admin.Logout)

	authed := r.Group("/admin")
	authed.Use(admin.AuthMiddleware())
	authed.GET("", admin.EditForm)
	authed.POST("", admin.Update)

	log.Printf("Listening on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
