package notifier

import (
	"net"
	"testing"

	"remstroy-site/internal/config"
	"remstroy-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleApplication() *models.Application {
	return &models.Application{
		FullName: "Ivan Petrov",
		Address:  "123 Main St",
		Phone:    "5551234",
	}
}

func sampleItems() []models.WorkItem {
	return []models.WorkItem{
		{Type: "Paint", Quantity: 10, Unit: "m2", Price: 100, Cost: 1000},
	}
}

func TestSendNoCredentials(t *testing.T) {
	n := New(config.SMTPConfig{Server: "smtp.example.com", Port: 587})
	assert.False(t, n.Send(sampleApplication(), sampleItems(), 1000))
}

func TestSendPasswordOnly(t *testing.T) {
	n := New(config.SMTPConfig{Server: "smtp.example.com", Port: 587, Password: "secret"})
	assert.False(t, n.Send(sampleApplication(), sampleItems(), 1000))
}

func TestSendUsernameWithoutAt(t *testing.T) {
	n := New(config.SMTPConfig{
		Server:   "smtp.example.com",
		Port:     587,
		Username: "not-an-address",
		Password: "secret",
	})
	assert.False(t, n.Send(sampleApplication(), sampleItems(), 1000))
}

func TestSendRelayUnavailable(t *testing.T) {
	// занимаем свободный порт и сразу освобождаем: на нём никто не слушает
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().(*net.TCPAddr)
	require.NoError(t, ln.Close())

	n := New(config.SMTPConfig{
		Server:   "127.0.0.1",
		Port:     addr.Port,
		Username: "user@example.com",
		Password: "secret",
	})
	assert.False(t, n.Send(sampleApplication(), sampleItems(), 1000))
}

func TestBuildBody(t *testing.T) {
	app := sampleApplication()
	body := buildBody(app, sampleItems(), 1000)

	assert.Contains(t, body, "ФИО: Ivan Petrov")
	assert.Contains(t, body, "Телефон: 5551234")
	assert.Contains(t, body, "Адрес: 123 Main St")
	assert.Contains(t, body, "Комментарий: Нет")
	assert.Contains(t, body, "- Paint: 10 m2 x 100 руб. = 1000 руб.")
	assert.Contains(t, body, "Итого: 1,000 руб.")
}

func TestBuildBodyWithoutItems(t *testing.T) {
	app := sampleApplication()
	app.Comment = "позвонить вечером"
	body := buildBody(app, nil, 0)

	assert.Contains(t, body, "Комментарий: позвонить вечером")
	assert.NotContains(t, body, "Выбранные работы")
	assert.NotContains(t, body, "Итого")
}
