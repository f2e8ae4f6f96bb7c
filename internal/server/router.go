package server

import (
	"html/template"
	"net/http"

	"remstroy-site/internal/config"
	"remstroy-site/internal/handlers"
	"remstroy-site/internal/middleware"
	"remstroy-site/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"formatAmount": models.FormatAmount,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SecretKey))
	r.Use(sessions.Sessions("remstroy_session", store))

	// ПУБЛИЧНЫЕ СТРАНИЦЫ
	r.GET("/", h.IndexPage)
	r.GET("/form", h.FormPage)
	r.POST("/submit_application", h.SubmitApplication)
	r.GET("/prices", h.PricesPage)

	// АДМИНКА
	r.GET("/admin/login", h.ShowAdminLogin)
	r.POST("/admin/login", h.AdminLogin)
	r.GET("/admin/logout", h.AdminLogout)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/applications", h.AdminApplications)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
