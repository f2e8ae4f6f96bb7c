package notifier

import (
	"fmt"
	"strings"
	"time"

	"remstroy-site/internal/config"
	"remstroy-site/internal/models"

	log "github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

const sendTimeout = 15 * time.Second

// Notifier отправляет письмо с содержимым заявки на настроенный адрес.
type Notifier struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Send — отправка best-effort, одна попытка. Любая ошибка гасится:
// false означает лишь, что подтверждение «письмо отправлено» показывать
// нельзя. В лог попадает только тип ошибки, без учётных данных.
func (n *Notifier) Send(app *models.Application, items []models.WorkItem, total float64) bool {
	if n.cfg.Username == "" || n.cfg.Password == "" || !strings.Contains(n.cfg.Username, "@") {
		return false
	}

	to := n.cfg.ToEmail
	if to == "" {
		to = n.cfg.Username
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.Username); err != nil {
		log.Warnf("email send failed: %T", err)
		return false
	}
	if err := msg.To(to); err != nil {
		log.Warnf("email send failed: %T", err)
		return false
	}
	msg.Subject("Заявка от " + models.Truncate(app.FullName, 30))
	msg.SetBodyString(mail.TypeTextPlain, buildBody(app, items, total))

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTimeout(sendTimeout),
	}
	if n.cfg.Port == 465 {
		// 465 — шифрование с самого начала, иначе STARTTLS до аутентификации
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(n.cfg.Server, opts...)
	if err != nil {
		log.Warnf("email send failed: %T", err)
		return false
	}

	if err := client.DialAndSend(msg); err != nil {
		log.Warnf("email send failed: %T", err)
		return false
	}
	return true
}

func buildBody(app *models.Application, items []models.WorkItem, total float64) string {
	comment := app.Comment
	if comment == "" {
		comment = "Нет"
	}

	var b strings.Builder
	b.WriteString("Новая заявка:\n\n")
	fmt.Fprintf(&b, "ФИО: %s\n", app.FullName)
	fmt.Fprintf(&b, "Телефон: %s\n", app.Phone)
	fmt.Fprintf(&b, "Адрес: %s\n", app.Address)
	fmt.Fprintf(&b, "Комментарий: %s\n", comment)

	if len(items) > 0 {
		b.WriteString("\nВыбранные работы:\n")
		for _, it := range items {
			fmt.Fprintf(&b, "- %s: %g %s x %g руб. = %g руб.\n",
				it.Type, it.Quantity, it.Unit, it.Price, it.Cost)
		}
		fmt.Fprintf(&b, "\nИтого: %s руб.\n", models.FormatAmount(total))
	}

	fmt.Fprintf(&b, "\nВремя: %s\n", time.Now().Format("02.01.2006 15:04"))
	return b.String()
}
