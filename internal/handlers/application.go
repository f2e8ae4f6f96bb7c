package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"remstroy-site/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SubmitApplication — приём заявки с формы: разбор полей, валидация,
// запись в базу, письмо, редирект с flash-сообщением.
func (h *Handler) SubmitApplication(c *gin.Context) {
	// пользователь никогда не видит внутренних ошибок
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("application processing failed: %v", r)
			addFlash(c, "⚠️ Произошла ошибка. Пожалуйста, попробуйте позже.")
			c.Redirect(http.StatusFound, "/form")
		}
	}()

	fullName := models.Truncate(strings.TrimSpace(c.PostForm("full_name")), 100)
	address := models.Truncate(strings.TrimSpace(c.PostForm("address")), 200)
	phone := models.Truncate(strings.TrimSpace(c.PostForm("phone")), 20)
	comment := models.Truncate(strings.TrimSpace(c.PostForm("comment")), 500)

	items := models.ParseWorkItems(c.PostForm("selected_works_json"))
	total, _ := strconv.ParseFloat(strings.TrimSpace(c.PostForm("total_amount")), 64)

	// защита от пустых заявок: без обязательных полей и выбранных работ
	// ничего не сохраняем
	if fullName == "" || address == "" || phone == "" || len(items) == 0 {
		addFlash(c, "❌ Заполните все обязательные поля")
		c.Redirect(http.StatusFound, "/form")
		return
	}

	selectedWorks, _ := json.Marshal(items)

	app := &models.Application{
		FullName:      fullName,
		Address:       address,
		Phone:         phone,
		Comment:       comment,
		IPAddress:     c.ClientIP(),
		UserAgent:     models.Truncate(c.Request.UserAgent(), 200),
		SelectedWorks: string(selectedWorks),
		TotalAmount:   total,
	}

	// запись best-effort: отказ хранилища не мешает ответить пользователю
	_ = h.store.Insert(app)

	emailSent := false
	if h.cfg.SMTPConfigured() {
		emailSent = h.notifier.Send(app, items, total)
	}

	amount := models.FormatAmount(total)
	if emailSent {
		addFlash(c, fmt.Sprintf("✅ Заявка принята! Сумма: %s руб. Мы свяжемся с вами.", amount))
	} else {
		addFlash(c, fmt.Sprintf("✅ Заявка принята! Сумма: %s руб.", amount))
	}

	c.Redirect(http.StatusFound, "/prices")
}
