package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, name string) error {
	subject := "Welcome to Rawad"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Rawad, %s!</h2>
			<p>Your account has been created. You can now complete your profile and start using the platform.</p>
		</body>
		</html>
	`, name)

	plainBody := fmt.Sprintf(`
Welcome to Rawad, %s!

Your account has been created. You can now complete your profile and start using the platform.
	`, name)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusEmail(to string, ticketID uint, status string) error {
	subject := fmt.Sprintf("Support Ticket #%d Updated", ticketID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your support ticket was updated</h2>
			<p>Ticket #%d is now <strong>%s</strong>.</p>
			<p>You can reply to the ticket from your account if you need further help.</p>
		</body>
		</html>
	`, ticketID, status)

	plainBody := fmt.Sprintf(`
Your support ticket was updated

Ticket #%d is now %s.

You can reply to the ticket from your account if you need further help.
	`, ticketID, status)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
