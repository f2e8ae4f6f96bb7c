package handlers

import (
	"remstroy-site/internal/config"
	"remstroy-site/internal/database"
	"remstroy-site/internal/notifier"
)

// Handler держит зависимости обработчиков: конфигурацию, хранилище
// и отправку почты. Всё передаётся явно, глобального состояния нет.
type Handler struct {
	cfg      *config.Config
	store    *database.Store
	notifier *notifier.Notifier
}

func New(cfg *config.Config, store *database.Store, n *notifier.Notifier) *Handler {
	return &Handler{
		cfg:      cfg,
		store:    store,
		notifier: n,
	}
}
