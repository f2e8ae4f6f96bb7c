package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

func (h *Handler) FormPage(c *gin.Context) {
	render(c, http.StatusOK, "form.html", nil)
}

func (h *Handler) PricesPage(c *gin.Context) {
	render(c, http.StatusOK, "prices.html", nil)
}
