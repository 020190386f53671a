// Package mail adaptador SMTP para los correos transaccionales.
package mail

import (
	"fmt"

	"github.com/jhoicas/Mercado-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

// Mailer envía correos HTML por SMTP. Implementa los puertos Mailer de los
// casos de uso de verificación y contraseñas.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer construye el mailer con las credenciales SMTP.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un correo HTML al destinatario.
func (m *Mailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
