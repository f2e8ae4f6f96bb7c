package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) ShowAdminLogin(c *gin.Context) {
	render(c, http.StatusOK, "admin_login.html", gin.H{"error": ""})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	// без ADMIN_PASSWORD админка выключена целиком
	if h.cfg.AdminPasswordHash == "" {
		render(c, http.StatusForbidden, "admin_login.html", gin.H{"error": "Вход отключён"})
		return
	}

	password := c.PostForm("password")
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)); err != nil {
		render(c, http.StatusBadRequest, "admin_login.html", gin.H{"error": "Неверный пароль"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("is_admin", true)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/admin/applications")
}

func (h *Handler) AdminLogout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// AdminApplications — просмотр принятых заявок, новые первыми.
// Заявки только читаются, путей изменения или удаления нет.
func (h *Handler) AdminApplications(c *gin.Context) {
	apps, err := h.store.List(200)
	if err != nil {
		log.Errorf("failed to list applications: %v", err)
	}

	count, err := h.store.Count()
	if err != nil {
		log.Errorf("failed to count applications: %v", err)
	}

	render(c, http.StatusOK, "admin_applications.html", gin.H{
		"applications": apps,
		"count":        count,
		"failures":     h.store.Failures(),
	})
}
