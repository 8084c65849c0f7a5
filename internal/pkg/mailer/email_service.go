package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendEscalationNotice(escalationId uint, userName, issue, priority string) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	supportInbox string
}

func NewEmailService(host string, port int, username, password, senderEmail, supportInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:       d,
		senderEmail:  senderEmail,
		supportInbox: supportInbox,
	}
}

// SendEscalationNotice mails the support inbox when a ticket is opened.
func (s *emailService) SendEscalationNotice(escalationId uint, userName, issue, priority string) error {
	if s.supportInbox == "" {
		return fmt.Errorf("support inbox not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.supportInbox)
	m.SetHeader("Subject", fmt.Sprintf("[MAGIARS] Nueva escalación #%d (%s)", escalationId, priority))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Nueva escalación #%d</h2>
			<p><strong>Usuario:</strong> %s</p>
			<p><strong>Prioridad:</strong> %s</p>
			<p><strong>Mensaje:</strong></p>
			<blockquote>%s</blockquote>
			<p>Revisa la bandeja de entrada en el panel de MAGIARS.</p>
		</div>
	`, escalationId, userName, priority, issue)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
